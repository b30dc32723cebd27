package physics

import (
	"fmt"
	"math"
)

type Opacity interface {
	Kappa(rho, T float64, aux EOSData) (kappa float64)
	String() string
}

// PowerLaw is kappa = Kappa0 * rho^Zeta * T^Gamma
type PowerLaw struct {
	Kappa0, Zeta, Gamma float64
}

func (pl PowerLaw) Kappa(rho, T float64, _ EOSData) (kappa float64) {
	var (
		rhoZ float64
	)
	switch pl.Zeta {
	case 1:
		rhoZ = rho
	case 1. / 3.:
		rhoZ = math.Cbrt(rho)
	default:
		rhoZ = math.Pow(rho, pl.Zeta)
	}
	kappa = pl.Kappa0 * rhoZ * math.Pow(T, pl.Gamma)
	return
}

func (pl PowerLaw) String() string {
	return fmt.Sprintf("%g rho^%.3g T^%.3g", pl.Kappa0, pl.Zeta, pl.Gamma)
}

// Kramers is the bound-free / free-free opacity law
type Kramers struct {
	PowerLaw
}

func NewKramers() *Kramers {
	return &Kramers{PowerLaw{Kappa0: 5e24, Zeta: 1, Gamma: -7. / 2.}}
}

func (k *Kramers) String() string {
	return "Kramers: " + k.PowerLaw.String()
}

/*
BellLin1994 is the two process fit of Bell & Lin (1994): the bound-free and
free-free branch competes with the H- scattering branch, the smaller one wins.
*/
type BellLin1994 struct {
	FreeFree, HScattering PowerLaw
}

func NewBellLin1994() *BellLin1994 {
	return &BellLin1994{
		FreeFree:    PowerLaw{Kappa0: 1.5e20, Zeta: 1, Gamma: -5. / 2.},
		HScattering: PowerLaw{Kappa0: 1.0e-36, Zeta: 1. / 3., Gamma: 10},
	}
}

func (bl *BellLin1994) Kappa(rho, T float64, aux EOSData) (kappa float64) {
	kappa = math.Min(bl.HScattering.Kappa(rho, T, aux), bl.FreeFree.Kappa(rho, T, aux))
	return
}

func (bl *BellLin1994) String() string {
	return fmt.Sprintf("Bell & Lin 1994: min(%s, %s)", bl.HScattering.String(), bl.FreeFree.String())
}
