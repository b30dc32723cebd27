package vertical

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/vertstruct/physics"
	"github.com/notargets/vertstruct/rootfind"
	"github.com/notargets/vertstruct/utils"
)

// Diagnostic records how a Fit reached its root
type Diagnostic struct {
	BracketSteps  int     // Trial points spent bracketing, including failed ones
	BracketLo     float64 // Bracket handed to the root finder, z0/r
	BracketHi     float64
	Iterations    int
	FunctionCalls int     // Residual evaluations of the root finder
	Evaluations   int     // Right hand side calls of the final integration
	Residual      float64 // Q(1) at the root as seen by the root finder
	Message       string
}

type ConvergedStructure struct {
	Z0r        float64
	Z0         float64
	Teff       float64
	Scales     ScaleConstants
	Laws       physics.Laws
	Profile    *SolutionProfile
	Midplane   Midplane
	Pi         [4]float64
	Tau        float64
	Tau0       float64
	Diagnostic Diagnostic
}

type trial struct {
	z0r, q float64
	err    error
}

/*
Fit finds the half thickness for which no flux crosses the symmetry plane. The
root is bracketed by repeatedly doubling or halving z0/r from the initial
estimate, then refined with Brent's method. On success the session is left at
the converged z0.
*/
func (vs *Structure) Fit() (cs *ConvergedStructure, err error) {
	var (
		last   trial
		lo, hi trial
		steps  int
		br     rootfind.Result
	)
	vs.converged = nil
	if lo, steps, err = vs.start(); err != nil {
		return
	}
	last = lo
	if lo.q == 0 {
		hi = lo
	} else {
		factor := 2.
		if lo.q < 0 {
			factor = 0.5
		}
		z0r := lo.z0r
		for {
			if steps >= vs.Config.MaxBracketSteps {
				err = &BracketingFailure{
					Steps:        steps,
					InitialZ0r:   vs.initialZ0r,
					LastZ0r:      last.z0r,
					LastResidual: last.q,
					Err:          last.err,
				}
				return
			}
			z0r *= factor
			steps++
			last = vs.try(z0r)
			if last.err != nil {
				vs.Logger.WithFields(log.Fields{
					"z0r":   z0r,
					"error": last.err,
				}).Warn("skipping failed trial while bracketing")
				continue
			}
			if math.Signbit(last.q) != math.Signbit(lo.q) || last.q == 0 {
				hi = last
				break
			}
			lo = last
		}
	}
	vs.Logger.WithFields(log.Fields{
		"lo":    lo.z0r,
		"hi":    hi.z0r,
		"steps": steps,
	}).Debug("z0/r bracketed")

	if lo.z0r == hi.z0r {
		br = rootfind.Result{Root: lo.z0r, FRoot: lo.q, Converged: true, Flag: "converged"}
	} else if br, last, err = vs.refine(vs.try, lo, hi); err != nil {
		err = &RootRefinementFailure{
			Lo: lo.z0r, Hi: hi.z0r,
			FLo: lo.q, FHi: hi.q,
			LastZ0r:      last.z0r,
			LastResidual: last.q,
			Iterations:   br.Iterations,
			Err:          err,
		}
		return
	}
	if cs, err = vs.finish(br, lo, hi); err != nil {
		return
	}
	cs.Diagnostic.BracketSteps = steps
	vs.converged = cs
	vs.Logger.WithFields(log.Fields{
		"z0r":        cs.Z0r,
		"residual":   cs.Diagnostic.Residual,
		"iterations": br.Iterations,
	}).Info("vertical structure converged")
	return
}

/*
refine runs Brent's method inside [lo, hi] using the residuals already known at
both ends. If a trial inside the bracket meets a DomainError, the bracket is cut
on both sides of the failed point and the root finder is restarted once.
*/
func (vs *Structure) refine(eval func(z0r float64) trial, lo, hi trial) (br rootfind.Result, last trial, err error) {
	var (
		de *DomainError
	)
	f := func(z0r float64) (q float64, err error) {
		last = eval(z0r)
		return last.q, last.err
	}
	br, err = rootfind.BrentBracketed(f, lo.z0r, lo.q, hi.z0r, hi.q, vs.Config.Brent)
	if err == nil || !errors.As(err, &de) {
		return
	}
	bad := last.z0r
	vs.Logger.WithFields(log.Fields{
		"z0r":   bad,
		"error": err,
	}).Warn("trial failed inside the bracket, cutting around it")
	a, b, ok := cut(eval, lo, hi, bad)
	if !ok {
		return
	}
	var (
		iterations = br.Iterations
		calls      = br.FunctionCalls + 2
	)
	br, err = rootfind.BrentBracketed(f, a.z0r, a.q, b.z0r, b.q, vs.Config.Brent)
	br.Iterations += iterations
	br.FunctionCalls += calls
	return
}

// cut returns the first pair of successful trials with a sign change among the
// bracket ends and the midpoints between them and the failed point
func cut(eval func(z0r float64) trial, lo, hi trial, bad float64) (a, b trial, ok bool) {
	var (
		good []trial
	)
	for _, tr := range []trial{lo, eval((lo.z0r + bad) / 2), eval((bad + hi.z0r) / 2), hi} {
		if tr.err == nil {
			good = append(good, tr)
		}
	}
	for i := 0; i+1 < len(good); i++ {
		if math.Signbit(good[i].q) != math.Signbit(good[i+1].q) || good[i+1].q == 0 {
			a, b = good[i], good[i+1]
			ok = a.z0r != lo.z0r || b.z0r != hi.z0r
			return
		}
	}
	return
}

// finish integrates the converged profile at the root and derives the output record
func (vs *Structure) finish(br rootfind.Result, lo, hi trial) (cs *ConvergedStructure, err error) {
	var sp *SolutionProfile
	vs.SetZ0(br.Root * vs.Inputs.Radius)
	if sp, err = vs.integrate(vs.scales, utils.Linspace(0, 1, vs.Config.ProfilePoints)); err != nil {
		err = &RootRefinementFailure{
			Lo: lo.z0r, Hi: hi.z0r,
			FLo: lo.q, FHi: hi.q,
			LastZ0r:      br.Root,
			LastResidual: math.NaN(),
			Iterations:   br.Iterations,
			Err:          fmt.Errorf("final evaluation: %w", err),
		}
		return
	}
	cs = vs.derive(vs.scales, sp)
	cs.Diagnostic = Diagnostic{
		BracketLo:     math.Min(lo.z0r, hi.z0r),
		BracketHi:     math.Max(lo.z0r, hi.z0r),
		Iterations:    br.Iterations,
		FunctionCalls: br.FunctionCalls,
		Evaluations:   sp.Evaluations,
		Residual:      br.FRoot,
		Message:       br.Flag,
	}
	return
}

func (vs *Structure) try(z0r float64) (tr trial) {
	tr.z0r = z0r
	if tr.q, tr.err = vs.Residual(z0r); tr.err != nil {
		tr.q = math.NaN()
	}
	return
}

// start evaluates the initial estimate, probing outward by powers of two if it fails
func (vs *Structure) start() (tr trial, steps int, err error) {
	var (
		z0r = vs.initialZ0r
		k   int
	)
	steps = 1
	if tr = vs.try(z0r); tr.err == nil {
		return
	}
	vs.Logger.WithFields(log.Fields{
		"z0r":   z0r,
		"error": tr.err,
	}).Warn("initial z0/r estimate failed, probing")
	for steps < vs.Config.MaxBracketSteps {
		steps++
		if steps%2 == 0 {
			k++
			tr = vs.try(z0r * math.Pow(2, float64(k)))
		} else {
			tr = vs.try(z0r * math.Pow(2, -float64(k)))
		}
		if tr.err == nil {
			return
		}
	}
	err = &BracketingFailure{
		Steps:        steps,
		InitialZ0r:   z0r,
		LastZ0r:      tr.z0r,
		LastResidual: math.NaN(),
		Err:          tr.err,
	}
	return
}
