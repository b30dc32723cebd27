package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrent(t *testing.T) {
	cfg := DefaultBrentConfig()
	{ // Polynomial root
		f := func(x float64) (float64, error) { return x*x*x - 2*x - 5, nil }
		r, err := Brent(f, 2, 3, cfg)
		require.NoError(t, err)
		assert.True(t, r.Converged)
		assert.InDelta(t, 2.0945514815423265, r.Root, 1e-11)
		assert.Less(t, r.Iterations, 15)
		assert.Equal(t, r.Iterations+1, r.FunctionCalls)
	}
	{ // Bracket given in reverse order, transcendental function
		f := func(x float64) (float64, error) { return math.Cos(x) - x, nil }
		r, err := Brent(f, 1, 0, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.7390851332151607, r.Root, 1e-11)
	}
	{ // Root on an end point
		f := func(x float64) (float64, error) { return x - 1, nil }
		r, err := Brent(f, 1, 4, cfg)
		require.NoError(t, err)
		assert.Equal(t, 1., r.Root)
		assert.Equal(t, 0, r.Iterations)
	}
	{ // Step function still converges to the jump by bisection
		f := func(x float64) (float64, error) {
			if x < math.Pi {
				return -1, nil
			}
			return 1, nil
		}
		r, err := Brent(f, 0, 10, cfg)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, r.Root, 1e-10)
	}
}

func TestBrentFailures(t *testing.T) {
	cfg := DefaultBrentConfig()
	f := func(x float64) (float64, error) { return x*x + 1, nil }
	_, err := Brent(f, -1, 1, cfg)
	assert.ErrorIs(t, err, ErrNoSignChange)

	// Iteration budget exhausted
	cfg.MaxIterations = 3
	cfg.XTol = 1e-15
	g := func(x float64) (float64, error) { return math.Atan(x - 0.3), nil }
	r, err := Brent(g, -100, 100, cfg)
	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Iterations)
	assert.False(t, r.Converged)
	assert.Equal(t, r.Root, ce.A)

	// Evaluation failures are wrapped with the failing abscissa
	errBad := errors.New("unphysical")
	h := func(x float64) (float64, error) {
		if x > 0 && x < 1 {
			return 0, errBad
		}
		return x - 0.5, nil
	}
	_, err = Brent(h, -1, 2, DefaultBrentConfig())
	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.ErrorIs(t, err, errBad)
	assert.True(t, ee.X > 0 && ee.X < 1)
}

func TestBrentBracketed(t *testing.T) {
	var (
		cfg   = DefaultBrentConfig()
		calls []float64
	)
	f := func(x float64) (float64, error) {
		calls = append(calls, x)
		return x*x*x - 2*x - 5, nil
	}
	full, err := Brent(f, 2, 3, cfg)
	require.NoError(t, err)
	calls = calls[:0]
	r, err := BrentBracketed(f, 2, -1, 3, 16, cfg)
	require.NoError(t, err)
	assert.Equal(t, full.Root, r.Root)
	assert.Equal(t, full.Iterations, r.Iterations)
	assert.Equal(t, full.FunctionCalls-2, r.FunctionCalls)
	assert.Len(t, calls, r.FunctionCalls)
	assert.NotContains(t, calls, 2.)
	assert.NotContains(t, calls, 3.)

	_, err = BrentBracketed(f, 2, 1, 3, 16, cfg)
	assert.ErrorIs(t, err, ErrNoSignChange)
	_, err = BrentBracketed(f, 2, math.NaN(), 3, 16, cfg)
	assert.ErrorIs(t, err, ErrNoSignChange)
}
