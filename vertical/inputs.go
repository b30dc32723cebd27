package vertical

import (
	"fmt"
	"math"
)

const (
	DefaultEps = 1.e-5
	DefaultMu  = 0.6
)

// PhysicalInputs describes one annulus of the disc, all CGS
type PhysicalInputs struct {
	Mass   float64 // Mass of the central object, g
	Alpha  float64 // Shakura-Sunyaev viscosity parameter, 0 < Alpha < 1
	Radius float64 // Cylindrical radius, cm
	Flux   float64 // Moment of the viscous forces F, g cm^2 s^-2
	Eps    float64 // Relative accuracy of the integrations
	Mu     float64 // Mean molecular weight
}

// WithDefaults fills unset accuracy and molecular weight
func (in PhysicalInputs) WithDefaults() PhysicalInputs {
	if in.Eps == 0 {
		in.Eps = DefaultEps
	}
	if in.Mu == 0 {
		in.Mu = DefaultMu
	}
	return in
}

func (in PhysicalInputs) Validate() (err error) {
	check := func(field string, value float64, ok bool, reason string) {
		if err != nil {
			return
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || !ok {
			err = &InvalidInputError{Field: field, Value: value, Reason: reason}
		}
	}
	check("Mass", in.Mass, in.Mass > 0, "must be positive")
	check("Alpha", in.Alpha, in.Alpha > 0 && in.Alpha < 1, "must lie in (0, 1)")
	check("Radius", in.Radius, in.Radius > 0, "must be positive")
	check("Flux", in.Flux, in.Flux > 0, "must be positive")
	check("Eps", in.Eps, in.Eps > 0 && in.Eps < 1, "must lie in (0, 1)")
	check("Mu", in.Mu, in.Mu > 0, "must be positive")
	return
}

func (in PhysicalInputs) String() string {
	return fmt.Sprintf("M = %g g, alpha = %g, r = %g cm, F = %g g cm^2/s^2, eps = %g, mu = %g",
		in.Mass, in.Alpha, in.Radius, in.Flux, in.Eps, in.Mu)
}
