// Package physics provides the local microphysics of the disc: the equation of
// state, the Rosseland-mean opacity and the temperature gradient law. The three
// capabilities are independent and are combined by the solver only through
// (pressure, temperature) -> density -> opacity -> gradient.
package physics

import (
	"fmt"

	"github.com/notargets/vertstruct/constants"
)

// EOSData carries auxiliary equation of state output the opacity may need
type EOSData struct {
	LnFreeE float64 // Natural log of the free electron number per baryon
}

type EOS interface {
	Density(P, T float64) (rho float64, aux EOSData)
	String() string
}

// IdealGas is a fully ionized or neutral ideal gas with fixed mean molecular weight
type IdealGas struct {
	Mu float64
}

func NewIdealGas(mu float64) (ig *IdealGas) {
	if mu <= 0 {
		panic(fmt.Errorf("mean molecular weight must be positive, have %v", mu))
	}
	ig = &IdealGas{Mu: mu}
	return
}

func (ig *IdealGas) Density(P, T float64) (rho float64, aux EOSData) {
	rho = P * ig.Mu / (constants.RGas * T)
	return
}

func (ig *IdealGas) String() string {
	return fmt.Sprintf("Ideal Gas, mu = %4.2f", ig.Mu)
}
