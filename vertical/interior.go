package vertical

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/vertstruct/ode"
	"github.com/notargets/vertstruct/physics"
)

// rhs is the normalized structure system for one trial half thickness
func (vs *Structure) rhs(sc ScaleConstants) ode.Func {
	var (
		om2   = sc.OmegaK * sc.OmegaK
		alpha = vs.Inputs.Alpha
	)
	return func(t float64, y, dy []float64) error {
		var (
			S, P, Q, T = y[MassColumn], y[Pressure], y[Flux], y[Temperature]
		)
		if S < 0 || T < 0 {
			return &DomainError{Z0: sc.Z0, T: t, State: StateVector{S, P, Q, T}}
		}
		var (
			temp     = T * sc.TNorm
			rho, aux = vs.Laws.EOS.Density(P*sc.PNorm, temp)
			kappa    = vs.Laws.Opacity.Kappa(rho, temp, aux)
			dPdt     = rho * (1 - t) * om2 * sc.Z0 * sc.Z0 / sc.PNorm
			dQdt     = -1.5 * sc.Z0 * sc.OmegaK * alpha * P * sc.PNorm / sc.QNorm
		)
		grad := vs.Laws.Gradient.DlnTdlnP(physics.GradientState{
			T: t, P: P, Q: Q, Temp: T,
			Rho: rho, Kappa: kappa,
			DQdt:   dQdt,
			Z0:     sc.Z0,
			OmegaK: sc.OmegaK,
			PNorm:  sc.PNorm,
			TNorm:  sc.TNorm,
			QNorm:  sc.QNorm,
		})
		dy[MassColumn] = 2 * rho * sc.Z0 / sc.SigmaNorm
		dy[Pressure] = dPdt
		dy[Flux] = dQdt
		dy[Temperature] = grad * dPdt * T / P
		return nil
	}
}

// initial is the state at the photosphere, t = 0
func (vs *Structure) initial(sc ScaleConstants) (y0 StateVector, err error) {
	var pph float64
	if pph, err = vs.photosphericPressure(sc); err != nil {
		return
	}
	y0 = StateVector{0, pph / sc.PNorm, 1, sc.Teff / sc.TNorm}
	return
}

func (vs *Structure) integrate(sc ScaleConstants, t []float64) (sp *SolutionProfile, err error) {
	var (
		y0  StateVector
		res *ode.Result
	)
	if y0, err = vs.initial(sc); err != nil {
		return
	}
	cfg := ode.Config{
		RTol: vs.Inputs.Eps,
		ATol: vs.Config.ATol,
	}
	if res, err = ode.Integrate(vs.Config.InteriorMethod, vs.rhs(sc), 0, 1, y0[:], t, cfg); err != nil {
		var de *DomainError
		if !errors.As(err, &de) {
			err = fmt.Errorf("interior at z0 = %g cm: %w", sc.Z0, err)
		}
		return
	}
	sp = &SolutionProfile{
		T:           res.T,
		Y:           res.Y,
		Steps:       res.Steps,
		Evaluations: res.Evaluations,
		Message:     res.Message,
	}
	return
}

/*
Integrate solves the structure for the current half thickness and samples it at
t, which must be sorted within [0, 1]. An empty t samples the surface and the
symmetry plane.
*/
func (vs *Structure) Integrate(t []float64) (sp *SolutionProfile, err error) {
	return vs.integrate(vs.scales, t)
}

/*
Residual moves the session to z0 = z0r * r and returns the normalized flux left
at the symmetry plane, Q(t = 1). It is positive when z0 is too small.
*/
func (vs *Structure) Residual(z0r float64) (q float64, err error) {
	var sp *SolutionProfile
	vs.SetZ0(z0r * vs.Inputs.Radius)
	if sp, err = vs.integrate(vs.scales, nil); err != nil {
		vs.Logger.WithFields(log.Fields{
			"z0r":   z0r,
			"error": err,
		}).Debug("residual evaluation failed")
		return
	}
	q = sp.Final()[Flux]
	vs.Logger.WithFields(log.Fields{
		"z0r":      z0r,
		"residual": q,
		"steps":    sp.Steps,
	}).Debug("residual")
	return
}
