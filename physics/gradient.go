package physics

import (
	"math"

	"github.com/notargets/vertstruct/constants"
	"github.com/notargets/vertstruct/utils"
)

/*
GradientState is everything a temperature gradient law may look at: the
normalized unknowns at coordinate t (t = 0 at the surface, t = 1 at the symmetry
plane), the local density and opacity in CGS, the normalized flux derivative and
the scale constants used to normalize.
*/
type GradientState struct {
	T          float64 // Normalized vertical coordinate
	P, Q, Temp float64 // Normalized pressure, flux and temperature
	Rho, Kappa float64 // Physical density and opacity
	DQdt       float64 // Normalized flux derivative at t
	Z0, OmegaK float64
	PNorm      float64
	TNorm      float64
	QNorm      float64
}

type TempGradient interface {
	DlnTdlnP(gs GradientState) (grad float64)
	String() string
}

// Radiative is radiative diffusion in the Eddington approximation
type Radiative struct{}

func NewRadiative() *Radiative { return &Radiative{} }

func (r *Radiative) DlnTdlnP(gs GradientState) (grad float64) {
	if gs.T >= 1 {
		return r.SymmetryPlane(gs)
	}
	return r.General(gs)
}

// General is (P/T) (dT/dz) / (dP/dz), singular where dP/dz vanishes at t = 1
func (r *Radiative) General(gs GradientState) (grad float64) {
	var (
		sig    = constants.SigmaSB
		tnorm4 = utils.POW(gs.TNorm, 4)
		dTdz   float64
		dPdz   float64
	)
	dTdz = (math.Abs(gs.Q) / utils.POW(gs.Temp, 3)) * 3 * gs.Kappa * gs.Rho * gs.Z0 * gs.QNorm / (16 * sig * tnorm4)
	dPdz = gs.Rho * (1 - gs.T) * gs.OmegaK * gs.OmegaK * gs.Z0 * gs.Z0 / gs.PNorm
	grad = (gs.P / gs.Temp) * (dTdz / dPdz)
	return
}

// SymmetryPlane is the limit of General as t -> 1, where Q and dP/dz vanish together
func (r *Radiative) SymmetryPlane(gs GradientState) (grad float64) {
	var (
		sig    = constants.SigmaSB
		tnorm4 = utils.POW(gs.TNorm, 4)
	)
	grad = -gs.DQdt * (gs.P / utils.POW(gs.Temp, 4)) * 3 * gs.Kappa * (gs.QNorm * gs.PNorm / tnorm4) /
		(16 * sig * gs.Z0 * gs.OmegaK * gs.OmegaK)
	return
}

func (r *Radiative) String() string { return "Radiative (Eddington approximation)" }
