package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/notargets/vertstruct/constants"
	"github.com/notargets/vertstruct/physics"
	"github.com/notargets/vertstruct/utils"
	"github.com/notargets/vertstruct/vertical"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSweeper(t *testing.T, opacity string, workers int, rin float64) (sw *Sweeper) {
	laws, err := physics.NewLaws("ideal", opacity, "", vertical.DefaultMu)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	sw = NewSweeper(NewFactory(laws, vertical.WithLogger(logger)), workers, rin)
	sw.Logger = logger
	return
}

func TestSCurve(t *testing.T) {
	var (
		sw   = newSweeper(t, "BellLin1994", 2, 0)
		base = vertical.PhysicalInputs{
			Mass:   1.5 * constants.MSun,
			Alpha:  0.3,
			Radius: 7e10,
		}
		teffs = []float64{8e3, 1e4, 1.2e4}
	)
	points, err := sw.SCurve(context.Background(), base, teffs)
	require.NoError(t, err)
	require.Len(t, points, len(teffs))
	assert.Equal(t, 0, Failed(points))
	for i, p := range points {
		assert.Equal(t, i, p.Index)
		assert.InEpsilon(t, teffs[i], p.Teff, 1e-10)
		if i > 0 {
			// Mdot grows as Teff^4 and the disc puffs up
			assert.Greater(t, p.Mdot, points[i-1].Mdot)
			assert.Greater(t, p.Result.Z0r, points[i-1].Result.Z0r)
		}
	}
	assert.InEpsilon(t, 0.1247, points[1].Result.Z0r, 1e-3)
}

func TestFailedPointIsSkipped(t *testing.T) {
	var (
		sw   = newSweeper(t, "Kramers", 0, 0)
		mass = 10 * constants.MSun
		r    = 400 * vertical.GravitationalRadius(mass)
		good = vertical.PhysicalInputs{
			Mass:   mass,
			Alpha:  0.01,
			Radius: r,
			Flux:   vertical.FluxFromMdot(mass, r, 0, 1e17),
		}
		bad = good
	)
	bad.Alpha = 2
	points, err := sw.Run(context.Background(), []vertical.PhysicalInputs{bad, good})
	require.NoError(t, err)
	assert.Equal(t, 1, Failed(points))
	var ie *vertical.InvalidInputError
	assert.True(t, errors.As(points[0].Err, &ie))
	assert.Nil(t, points[0].Result)
	assert.True(t, points[1].OK())
	assert.InEpsilon(t, 1e17, points[1].Mdot, 1e-12)
}

func TestRadial(t *testing.T) {
	var (
		mass = 10 * constants.MSun
		rg   = vertical.GravitationalRadius(mass)
		sw   = newSweeper(t, "Kramers", 3, 3*rg)
		base = vertical.PhysicalInputs{
			Mass:  mass,
			Alpha: 0.01,
		}
		radii = utils.Geomspace(200*rg, 800*rg, 3)
	)
	points, err := sw.Radial(context.Background(), base, 1e17, radii)
	require.NoError(t, err)
	assert.Equal(t, 0, Failed(points))
	for i, p := range points {
		assert.Equal(t, radii[i], p.Inputs.Radius)
		assert.InEpsilon(t, 1e17, p.Mdot, 1e-12)
		if i > 0 {
			// The effective temperature falls outward
			assert.Less(t, p.Teff, points[i-1].Teff)
		}
	}

	_, err = sw.Radial(context.Background(), base, 1e17, []float64{rg})
	assert.Error(t, err)
}

func TestCancelled(t *testing.T) {
	sw := newSweeper(t, "Kramers", 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sw.SCurve(ctx, vertical.PhysicalInputs{Mass: constants.MSun, Alpha: 0.1, Radius: 1e10},
		[]float64{1e4, 2e4})
	assert.True(t, errors.Is(err, context.Canceled))
}
