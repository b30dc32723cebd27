package vertical

import (
	"math"

	"github.com/notargets/vertstruct/constants"
)

/*
ScaleConstants normalize the unknowns so that they are of order unity at the
disc surface. Everything except Teff, OmegaK and QNorm depends on the half
thickness, so a new set is built for every trial Z0.
*/
type ScaleConstants struct {
	Z0        float64 // Half thickness, cm
	OmegaK    float64 // Keplerian angular frequency, s^-1
	QNorm     float64 // Surface flux Q0, erg cm^-2 s^-1
	Teff      float64 // Effective temperature, K
	PNorm     float64
	TNorm     float64
	SigmaNorm float64
}

func NewScaleConstants(in PhysicalInputs, z0 float64) (sc ScaleConstants) {
	var (
		omegaK = math.Sqrt(constants.G * in.Mass / (in.Radius * in.Radius * in.Radius))
		q0     = (3 / (8 * math.Pi)) * in.Flux * omegaK / (in.Radius * in.Radius)
	)
	sc = ScaleConstants{
		Z0:        z0,
		OmegaK:    omegaK,
		QNorm:     q0,
		Teff:      math.Pow(q0/constants.SigmaSB, 0.25),
		PNorm:     (4. / 3.) * q0 / (in.Alpha * z0 * omegaK),
		TNorm:     omegaK * omegaK * in.Mu * z0 * z0 / constants.RGas,
		SigmaNorm: 28 * q0 / (3 * in.Alpha * z0 * z0 * omegaK * omegaK * omegaK),
	}
	return
}

// Z0rInit is the analytic estimate of z0/r used to start the shooting
func Z0rInit(in PhysicalInputs) float64 {
	return 2.86e-7 * math.Pow(in.Flux, 3./20.) * math.Pow(in.Mass/constants.MSun, -9./20.) *
		math.Pow(in.Alpha, -1./10.) * math.Pow(in.Radius/1.e10, 1./20.)
}
