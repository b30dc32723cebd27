// Package rootfind locates roots of scalar functions that may fail to evaluate.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// Func is a scalar function whose evaluation may fail
type Func func(x float64) (y float64, err error)

var ErrNoSignChange = errors.New("f(a) and f(b) must have different signs")

// ConvergenceError reports the bracket held when the iteration budget ran out
type ConvergenceError struct {
	Iterations int
	A, B       float64 // Current best estimate and its bracketing partner
	FA, FB     float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("root not converged after %d iterations, bracket [%g, %g], f = [%g, %g]",
		e.Iterations, e.A, e.B, e.FA, e.FB)
}

// EvaluationError wraps a failure of the function inside the root finder
type EvaluationError struct {
	X   float64
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("function evaluation failed at x = %g: %v", e.X, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

type BrentConfig struct {
	XTol, RTol    float64
	MaxIterations int
}

func DefaultBrentConfig() BrentConfig {
	return BrentConfig{
		XTol:          2.e-12,
		RTol:          4*math.Nextafter(1, 2) - 4,
		MaxIterations: 100,
	}
}

type Result struct {
	Root          float64
	FRoot         float64
	Iterations    int
	FunctionCalls int
	Converged     bool
	Flag          string
}

/*
Brent finds a root of f in [a, b] with Brent's method: inverse quadratic
interpolation or secant steps when they stay well inside the bracket, bisection
otherwise. Termination is on the bracket width XTol + RTol*|x|.
*/
func Brent(f Func, a, b float64, cfg BrentConfig) (r Result, err error) {
	var (
		fa, fb float64
	)
	if fa, err = f(a); err != nil {
		r.FunctionCalls, err = 1, &EvaluationError{X: a, Err: err}
		return
	}
	if fb, err = f(b); err != nil {
		r.FunctionCalls, err = 2, &EvaluationError{X: b, Err: err}
		return
	}
	r, err = BrentBracketed(f, a, fa, b, fb, cfg)
	r.FunctionCalls += 2
	return
}

// BrentBracketed is Brent with the values at both ends already known, f is only
// called inside the bracket
func BrentBracketed(f Func, a, fa, b, fb float64, cfg BrentConfig) (r Result, err error) {
	var (
		xpre, xcur       = a, b
		fpre, fcur       = fa, fb
		xblk, fblk       float64
		spre, scur       float64
		sbis, delta      float64
		stry, dpre, dblk float64
	)
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultBrentConfig().MaxIterations
	}
	eval := func(x float64) (y float64, err error) {
		r.FunctionCalls++
		if y, err = f(x); err != nil {
			err = &EvaluationError{X: x, Err: err}
		}
		return
	}
	if fpre*fcur > 0 || math.IsNaN(fpre) || math.IsNaN(fcur) {
		err = fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrNoSignChange, a, fpre, b, fcur)
		return
	}
	r.Converged = true
	r.Flag = "converged"
	if fpre == 0 {
		r.Root, r.FRoot = xpre, fpre
		return
	}
	if fcur == 0 {
		r.Root, r.FRoot = xcur, fcur
		return
	}
	for r.Iterations = 1; r.Iterations <= cfg.MaxIterations; r.Iterations++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}
		delta = (cfg.XTol + cfg.RTol*math.Abs(xcur)) / 2
		sbis = (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			r.Root, r.FRoot = xcur, fcur
			return
		}
		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			if xpre == xblk {
				// Secant
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// Inverse quadratic interpolation
				dpre = (fpre - fcur) / (xpre - xcur)
				dblk = (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}
		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}
		if fcur, err = eval(xcur); err != nil {
			r.Converged = false
			r.Flag = "evaluation failed"
			return
		}
	}
	r.Iterations = cfg.MaxIterations
	r.Converged = false
	r.Flag = "convergence error"
	r.Root, r.FRoot = xcur, fcur
	err = &ConvergenceError{Iterations: cfg.MaxIterations, A: xcur, B: xblk, FA: fcur, FB: fblk}
	return
}
