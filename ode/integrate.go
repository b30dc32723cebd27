// Package ode samples solutions of first order systems of ordinary differential
// equations at caller requested points. The stepping is done by the adaptive
// explicit Runge-Kutta solvers of gosl; each requested point is an end point of
// a solve, so samples carry the full order of the method.
package ode

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	gosl "github.com/cpmech/gosl/ode"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/vertstruct/utils"
)

func init() {
	// gosl prints end point warnings to stdout when verbose
	io.Verbose = false
}

// Func evaluates dy/dt at (t, y) into dy. A non nil error aborts the integration
// and is returned unchanged by Integrate.
type Func func(t float64, y, dy []float64) error

var (
	ErrStepSizeTooSmall = errors.New("required step size is less than spacing between numbers")
	ErrTooManySteps     = errors.New("maximum number of steps exceeded")
	ErrNonFinite        = errors.New("derivative is not finite")
)

type Config struct {
	RTol, ATol float64
	MaxSteps   int     // Substeps allowed between two consecutive samples
	FirstStep  float64 // If > 0, used as the first step instead of the solver default
}

func DefaultConfig() Config {
	return Config{
		RTol:     1.e-3,
		ATol:     1.e-6,
		MaxSteps: 100000,
	}
}

type Result struct {
	T           []float64
	Y           *mat.Dense // Row i is component i, column j is sample T[j]
	Steps       int
	Rejected    int
	Evaluations int
	Message     string
}

// Final returns the state at the last requested point
func (r *Result) Final() (y []float64) {
	_, nc := r.Y.Dims()
	y = mat.Col(nil, nc-1, r.Y)
	return
}

// abort carries an error out of a gosl solve, which has no error return
type abort struct {
	err error
}

/*
Integrate advances y0 from t0 to t1 > t0 with method m and samples the solution
at tEval, which must be non-decreasing and lie within [t0, t1]. An empty tEval
samples the two end points.
*/
func Integrate(m Method, f Func, t0, t1 float64, y0, tEval []float64, cfg Config) (res *Result, err error) {
	var (
		n = len(y0)
	)
	if !(t1 > t0) {
		err = fmt.Errorf("integration interval [%v, %v] is empty", t0, t1)
		return
	}
	if n == 0 {
		err = fmt.Errorf("empty initial state")
		return
	}
	if cfg.RTol <= 0 || !(cfg.ATol > 1.e-15) {
		err = fmt.Errorf("invalid tolerances rtol = %v, atol = %v", cfg.RTol, cfg.ATol)
		return
	}
	if int(m) >= len(solverNames) {
		err = fmt.Errorf("unknown integration method %d", m)
		return
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultConfig().MaxSteps
	}
	if len(tEval) == 0 {
		tEval = []float64{t0, t1}
	}
	for i, te := range tEval {
		if te < t0 || te > t1 || (i > 0 && te < tEval[i-1]) {
			err = fmt.Errorf("evaluation points must be sorted within [%v, %v], have %v at %d", t0, t1, te, i)
			return
		}
	}
	r := &Result{
		T: append([]float64{}, tEval...),
		Y: mat.NewDense(n, len(tEval), nil),
	}
	if err = run(m, f, t0, t1, y0, r, cfg); err != nil {
		return
	}
	res = r
	return
}

func run(m Method, f Func, t0, t1 float64, y0 []float64, res *Result, cfg Config) (err error) {
	var (
		conf = gosl.NewConfig(m.solverName(), "")
		y    = la.NewVector(len(y0))
		t    = t0
	)
	conf.SetTols(cfg.ATol, cfg.RTol)
	conf.NmaxSS = cfg.MaxSteps
	if cfg.FirstStep > 0 {
		conf.IniH = cfg.FirstStep
	}
	fcn := func(dy la.Vector, h, x float64, y la.Vector) {
		res.Evaluations++
		if minStep := 10 * (math.Nextafter(x, math.Inf(1)) - x); !(h >= minStep) {
			panic(abort{fmt.Errorf("%w at t = %g, h = %g", ErrStepSizeTooSmall, x, h)})
		}
		if err := f(x, y, dy); err != nil {
			panic(abort{err})
		}
		if !utils.IsFinite(dy) {
			panic(abort{fmt.Errorf("%w at t = %g, y = %v", ErrNonFinite, x, y)})
		}
	}
	sol := gosl.NewSolver(len(y0), conf, fcn, nil, nil)
	defer sol.Free()
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case abort:
				err = e.err
			case string:
				err = fmt.Errorf("%w: %s, reached t = %g", ErrTooManySteps, strings.TrimSpace(e), t)
			default:
				panic(r)
			}
		}
	}()
	advance := func(to float64) {
		if to <= t {
			return
		}
		sol.Solve(y, t, to)
		res.Steps += sol.Stat.Naccepted
		res.Rejected += sol.Stat.Nrejected
		if sol.Stat.Hopt > 0 {
			conf.IniH = sol.Stat.Hopt
		}
		t = to
	}
	copy(y, y0)
	for j, te := range res.T {
		advance(te)
		res.Y.SetCol(j, y)
	}
	advance(t1)
	res.Message = "The solver successfully reached the end of the integration interval."
	return
}
