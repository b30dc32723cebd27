package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/vertstruct/constants"
)

func TestIdealGas(t *testing.T) {
	ig := NewIdealGas(0.6)
	rho, aux := ig.Density(1e5, 1e4)
	assert.InEpsilon(t, 1e5*0.6/(constants.RGas*1e4), rho, 1e-14)
	assert.Equal(t, 0., aux.LnFreeE)
	// Density is linear in P and inverse in T
	rho2, _ := ig.Density(2e5, 2e4)
	assert.InEpsilon(t, rho, rho2, 1e-14)
	assert.Panics(t, func() { NewIdealGas(0) })
}

func TestOpacity(t *testing.T) {
	var (
		rho, T = 1e-8, 1e4
	)
	kr := NewKramers()
	assert.InEpsilon(t, 5e24*rho*math.Pow(T, -3.5), kr.Kappa(rho, T, EOSData{}), 1e-12)

	bl := NewBellLin1994()
	ff := 1.5e20 * rho * math.Pow(T, -2.5)
	h := 1e-36 * math.Cbrt(rho) * math.Pow(T, 10)
	assert.InEpsilon(t, math.Min(ff, h), bl.Kappa(rho, T, EOSData{}), 1e-12)
	// Hot gas is on the free-free branch, cool gas on the H- branch
	{
		hot := bl.Kappa(rho, 3e4, EOSData{})
		assert.InEpsilon(t, bl.FreeFree.Kappa(rho, 3e4, EOSData{}), hot, 1e-12)
		cool := bl.Kappa(rho, 5e3, EOSData{})
		assert.InEpsilon(t, bl.HScattering.Kappa(rho, 5e3, EOSData{}), cool, 1e-12)
	}
	// Generic exponents follow math.Pow
	pl := PowerLaw{Kappa0: 2, Zeta: 0.5, Gamma: 1}
	assert.InEpsilon(t, 2*math.Sqrt(4)*3, pl.Kappa(4, 3, EOSData{}), 1e-14)
}

func TestSelectors(t *testing.T) {
	laws, err := NewLaws("IdealGas", "Bell-Lin 1994", "", 0.6)
	require.NoError(t, err)
	assert.IsType(t, &IdealGas{}, laws.EOS)
	assert.IsType(t, &BellLin1994{}, laws.Opacity)
	assert.IsType(t, &Radiative{}, laws.Gradient)

	laws, err = NewLaws("ideal", "KRAMERS", "radiative", 1.0)
	require.NoError(t, err)
	assert.IsType(t, &Kramers{}, laws.Opacity)
	assert.Equal(t, 1.0, laws.EOS.(*IdealGas).Mu)

	_, err = NewLaws("degenerate", "kramers", "", 0.6)
	assert.Error(t, err)
	_, err = NewLaws("ideal", "opal", "", 0.6)
	assert.Error(t, err)
	_, err = NewLaws("ideal", "kramers", "convective", 0.6)
	assert.Error(t, err)
	_, err = NewLaws("ideal", "kramers", "", -1)
	assert.Error(t, err)
}

func TestRadiativeSymmetryPlaneLimit(t *testing.T) {
	/*
		Near t = 1 the flux vanishes linearly, Q(t) ~ -DQdt (1 - t), and the
		general expression must approach the closed form used at t = 1.
	*/
	var (
		r  = NewRadiative()
		gs = GradientState{
			T: 1, P: 2.3, Q: 0, Temp: 0.8,
			Rho: 3e-7, Kappa: 4.5, DQdt: -4.6,
			Z0: 2e9, OmegaK: 3e-3, PNorm: 1e5, TNorm: 5e4, QNorm: 1e12,
		}
		special = r.DlnTdlnP(gs)
	)
	assert.InEpsilon(t, special, r.SymmetryPlane(gs), 1e-15)
	for _, dt := range []float64{1e-3, 1e-5, 1e-7} {
		gsg := gs
		gsg.T = 1 - dt
		gsg.Q = -gs.DQdt * dt
		assert.InEpsilon(t, special, r.DlnTdlnP(gsg), 1e-6)
	}
	// General formula is singular at t = 1
	gsg := gs
	gsg.Q = 1e-3
	assert.True(t, math.IsInf(r.General(gsg), 1))
}
