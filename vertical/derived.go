package vertical

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/notargets/vertstruct/utils"
)

// Midplane holds the physical state at the symmetry plane
type Midplane struct {
	Kappa  float64 // cm^2/g
	Rho    float64 // g/cm^3
	T      float64 // K
	P      float64 // dyn/cm^2
	Sigma0 float64 // Surface density of the half disc, g/cm^2
}

func (mp Midplane) String() string {
	return fmt.Sprintf("kappa_c = %g, rho_c = %g, T_c = %g, P_c = %g, Sigma_0 = %g",
		mp.Kappa, mp.Rho, mp.T, mp.P, mp.Sigma0)
}

func (vs *Structure) midplane(sc ScaleConstants, sp *SolutionProfile) (mp Midplane) {
	fin := sp.Final()
	mp.P = fin[Pressure] * sc.PNorm
	mp.T = fin[Temperature] * sc.TNorm
	rho, aux := vs.Laws.EOS.Density(mp.P, mp.T)
	mp.Rho = rho
	mp.Kappa = vs.Laws.Opacity.Kappa(rho, mp.T, aux)
	mp.Sigma0 = fin[MassColumn] * sc.SigmaNorm
	return
}

/*
pi returns the four dimensionless combinations of midplane values that the
self-similar solution fixes to order unity:

	Pi1 = OmegaK^2 z0^2 rho_c / P_c
	Pi2 = Sigma0 / (2 z0 rho_c)
	Pi3 = 3/4 alpha OmegaK P_c Sigma0 / (Q0 rho_c)
	Pi4 = 3/32 (Teff/T_c)^4 Sigma0 kappa_c
*/
func (vs *Structure) pi(sc ScaleConstants, mp Midplane) (pi [4]float64) {
	var (
		z0 = sc.Z0
		om = sc.OmegaK
	)
	pi[0] = om * om * z0 * z0 * mp.Rho / mp.P
	pi[1] = mp.Sigma0 / (2 * z0 * mp.Rho)
	pi[2] = 0.75 * vs.Inputs.Alpha * om * mp.P * mp.Sigma0 / (sc.QNorm * mp.Rho)
	pi[3] = (3. / 32.) * utils.POW(sc.Teff/mp.T, 4) * mp.Sigma0 * mp.Kappa
	return
}

// tau is the optical depth from the surface to the symmetry plane, z0 times the integral of kappa rho over t
func (vs *Structure) tau(sc ScaleConstants, sp *SolutionProfile) (tau float64) {
	var (
		n  = sp.Len()
		kr = make([]float64, n)
	)
	for j := 0; j < n; j++ {
		sv := sp.At(j)
		temp := sv[Temperature] * sc.TNorm
		rho, aux := vs.Laws.EOS.Density(sv[Pressure]*sc.PNorm, temp)
		kr[j] = vs.Laws.Opacity.Kappa(rho, temp, aux) * rho
	}
	tau = sc.Z0 * integrate.Simpsons(sp.T, kr)
	return
}

func (vs *Structure) derive(sc ScaleConstants, sp *SolutionProfile) (cs *ConvergedStructure) {
	mp := vs.midplane(sc, sp)
	cs = &ConvergedStructure{
		Z0r:      sc.Z0 / vs.Inputs.Radius,
		Z0:       sc.Z0,
		Teff:     sc.Teff,
		Scales:   sc,
		Laws:     vs.Laws,
		Profile:  sp,
		Midplane: mp,
		Pi:       vs.pi(sc, mp),
		Tau:      vs.tau(sc, sp),
		Tau0:     0.5 * mp.Sigma0 * mp.Kappa,
	}
	return
}

// Midplane integrates at the current half thickness and returns the symmetry plane state
func (vs *Structure) Midplane() (mp Midplane, err error) {
	var sp *SolutionProfile
	if sp, err = vs.integrate(vs.scales, nil); err != nil {
		return
	}
	mp = vs.midplane(vs.scales, sp)
	return
}

func (vs *Structure) Pi() (pi [4]float64, err error) {
	var mp Midplane
	if mp, err = vs.Midplane(); err != nil {
		return
	}
	pi = vs.pi(vs.scales, mp)
	return
}

// Tau samples the profile on ProfilePoints uniform points for the Simpson quadrature
func (vs *Structure) Tau() (tau float64, err error) {
	var sp *SolutionProfile
	if sp, err = vs.integrate(vs.scales, utils.Linspace(0, 1, vs.Config.ProfilePoints)); err != nil {
		return
	}
	tau = vs.tau(vs.scales, sp)
	return
}

// Tau0 is the optical depth estimate Sigma0 kappa_c / 2
func (vs *Structure) Tau0() (tau0 float64, err error) {
	var mp Midplane
	if mp, err = vs.Midplane(); err != nil {
		return
	}
	tau0 = 0.5 * mp.Sigma0 * mp.Kappa
	return
}

// Physical converts profile sample j to height above the midplane, density, temperature and pressure
func (cs *ConvergedStructure) Physical(j int) (z, rho, temp, pres float64) {
	var (
		sc = cs.Scales
		sv = cs.Profile.At(j)
	)
	z = (1 - cs.Profile.T[j]) * sc.Z0
	temp = sv[Temperature] * sc.TNorm
	pres = sv[Pressure] * sc.PNorm
	rho, _ = cs.Laws.EOS.Density(pres, temp)
	return
}
