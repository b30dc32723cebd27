package vertical

import (
	"math"

	"github.com/notargets/vertstruct/constants"
)

// GravitationalRadius is 2GM/c^2
func GravitationalRadius(mass float64) float64 {
	return 2 * constants.G * mass / (constants.C * constants.C)
}

// SpecificAngularMomentum is the Keplerian h = sqrt(GMr)
func SpecificAngularMomentum(mass, radius float64) float64 {
	return math.Sqrt(constants.G * mass * radius)
}

// FluxFromTeff inverts Teff = (Q0/sigma)^(1/4) for the viscous torque F
func FluxFromTeff(mass, radius, teff float64) float64 {
	var (
		gm = constants.G * mass
		h  = SpecificAngularMomentum(mass, radius)
	)
	return (8 * math.Pi / 3) * math.Pow(h, 7) / math.Pow(gm, 4) * constants.SigmaSB * math.Pow(teff, 4)
}

// FluxFromMdot is the stationary torque F = Mdot h (1 - sqrt(rin/r)), zero at the inner edge
func FluxFromMdot(mass, radius, rin, mdot float64) float64 {
	return mdot * SpecificAngularMomentum(mass, radius) * (1 - math.Sqrt(rin/radius))
}

func MdotFromFlux(mass, radius, rin, flux float64) float64 {
	return flux / (SpecificAngularMomentum(mass, radius) * (1 - math.Sqrt(rin/radius)))
}
