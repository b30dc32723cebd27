package vertical

import (
	"fmt"
	"math"

	"github.com/notargets/vertstruct/ode"
)

// TauPhotosphere is the optical depth of the photosphere in the Eddington approximation
const TauPhotosphere = 2. / 3.

// photosphereTemperature is T(tau) = Teff (1/2 + 3 tau/4)^(1/4)
func photosphereTemperature(teff, tau float64) float64 {
	return teff * math.Pow(0.5+0.75*tau, 0.25)
}

/*
photosphericPressure integrates hydrostatic equilibrium in optical depth,
dP/dtau = z0 OmegaK^2 / kappa, from a near vacuum P(0) down to tau = 2/3 and
returns the physical pressure there.
*/
func (vs *Structure) photosphericPressure(sc ScaleConstants) (pph float64, err error) {
	var (
		g   = sc.Z0 * sc.OmegaK * sc.OmegaK
		res *ode.Result
	)
	rhs := func(tau float64, y, dy []float64) error {
		var (
			temp     = photosphereTemperature(sc.Teff, tau)
			rho, aux = vs.Laws.EOS.Density(y[0], temp)
		)
		dy[0] = g / vs.Laws.Opacity.Kappa(rho, temp, aux)
		return nil
	}
	cfg := ode.Config{
		RTol: vs.Inputs.Eps,
		ATol: vs.Config.ATol,
	}
	y0 := []float64{vs.Config.PressureFloor * sc.PNorm}
	if res, err = ode.Integrate(vs.Config.PhotosphereMethod, rhs, 0, TauPhotosphere, y0, nil, cfg); err != nil {
		err = fmt.Errorf("photosphere at z0 = %g cm: %w", sc.Z0, err)
		return
	}
	pph = res.Final()[0]
	return
}
