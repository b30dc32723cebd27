package vertical

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Var indexes the dimensionless unknowns
type Var uint8

const (
	MassColumn  Var = iota // S, mass coordinate
	Pressure               // P
	Flux                   // Q, energy flux
	Temperature            // T
)

const NVars = 4

func (v Var) String() string {
	return []string{"S", "P", "Q", "T"}[v]
}

type StateVector [NVars]float64

func (sv StateVector) String() string {
	return fmt.Sprintf("S = %g, P = %g, Q = %g, T = %g",
		sv[MassColumn], sv[Pressure], sv[Flux], sv[Temperature])
}

// SolutionProfile is the state sampled at normalized coordinates T, t = 0 is the surface
type SolutionProfile struct {
	T           []float64
	Y           *mat.Dense // NVars x len(T)
	Steps       int
	Evaluations int
	Message     string
}

func (sp *SolutionProfile) Len() int { return len(sp.T) }

// Var returns a copy of one unknown over the whole profile
func (sp *SolutionProfile) Var(v Var) []float64 {
	return mat.Row(nil, int(v), sp.Y)
}

func (sp *SolutionProfile) At(j int) (sv StateVector) {
	for v := range sv {
		sv[v] = sp.Y.At(v, j)
	}
	return
}

func (sp *SolutionProfile) Final() StateVector {
	return sp.At(len(sp.T) - 1)
}
