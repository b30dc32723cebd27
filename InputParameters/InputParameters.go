package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/vertstruct/constants"
	"github.com/notargets/vertstruct/physics"
	"github.com/notargets/vertstruct/utils"
	"github.com/notargets/vertstruct/vertical"
)

const DefaultRinRg = 3.

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title         string           `json:"Title"`
	Mass          float64          `json:"Mass"`     // Solar masses
	Alpha         float64          `json:"Alpha"`
	Radius        float64          `json:"Radius"`   // cm
	RadiusRg      float64          `json:"RadiusRg"` // Alternative to Radius, in gravitational radii 2GM/c^2
	Teff          float64          `json:"Teff"`     // Exactly one of Teff, Mdot, Flux sets the energy release
	Mdot          float64          `json:"Mdot"`     // g/s
	Flux          float64          `json:"Flux"`     // g cm^2 s^-2
	RinRg         float64          `json:"RinRg"`    // Inner disc edge in gravitational radii, used with Mdot
	EOS           string           `json:"EOS"`
	Opacity       string           `json:"Opacity"`
	Gradient      string           `json:"Gradient"`
	Mu            float64          `json:"Mu"`
	Eps           float64          `json:"Eps"`
	ProfilePoints int              `json:"ProfilePoints"`
	Sweep         *SweepParameters `json:"Sweep"`
}

// SweepParameters describe a grid of solves, Teff for an S-curve or radius for a radial profile
type SweepParameters struct {
	TeffMin   float64 `json:"TeffMin"`
	TeffMax   float64 `json:"TeffMax"`
	RMinRg    float64 `json:"RMinRg"`
	RMaxRg    float64 `json:"RMaxRg"`
	NPoints   int     `json:"NPoints"`
	Workers   int     `json:"Workers"`
	Geometric bool    `json:"Geometric"`
}

func (ip *InputParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return
}

func (ip *InputParameters) setDefaults() {
	if len(ip.EOS) == 0 {
		ip.EOS = "ideal"
	}
	if len(ip.Opacity) == 0 {
		ip.Opacity = "kramers"
	}
	if len(ip.Gradient) == 0 {
		ip.Gradient = "radiative"
	}
	if ip.Mu == 0 {
		ip.Mu = vertical.DefaultMu
	}
	if ip.Eps == 0 {
		ip.Eps = vertical.DefaultEps
	}
	if ip.RinRg == 0 {
		ip.RinRg = DefaultRinRg
	}
	if ip.ProfilePoints == 0 {
		ip.ProfilePoints = vertical.DefaultConfig().ProfilePoints
	}
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Mass [Msun]\n", ip.Mass)
	fmt.Printf("%8.5f\t\t= Alpha\n", ip.Alpha)
	if ip.RadiusRg > 0 {
		fmt.Printf("%8.3f\t\t= Radius [rg]\n", ip.RadiusRg)
	} else {
		fmt.Printf("%8.5g\t\t= Radius [cm]\n", ip.Radius)
	}
	switch {
	case ip.Teff > 0:
		fmt.Printf("%8.5g\t\t= Teff [K]\n", ip.Teff)
	case ip.Mdot > 0:
		fmt.Printf("%8.5g\t\t= Mdot [g/s], Rin = %g rg\n", ip.Mdot, ip.RinRg)
	default:
		fmt.Printf("%8.5g\t\t= Flux\n", ip.Flux)
	}
	fmt.Printf("[%s]\t\t\t= EOS, mu = %4.2f\n", ip.EOS, ip.Mu)
	fmt.Printf("[%s]\t\t= Opacity\n", ip.Opacity)
	fmt.Printf("[%s]\t\t= Temperature Gradient\n", ip.Gradient)
	fmt.Printf("%8.2g\t\t= Eps\n", ip.Eps)
	if sw := ip.Sweep; sw != nil {
		fmt.Printf("Sweep: Teff = [%g, %g], R = [%g, %g] rg, %d points, %d workers\n",
			sw.TeffMin, sw.TeffMax, sw.RMinRg, sw.RMaxRg, sw.NPoints, sw.Workers)
	}
}

func (ip *InputParameters) Validate() (err error) {
	var nSources int
	for _, v := range []float64{ip.Teff, ip.Mdot, ip.Flux} {
		if v != 0 {
			nSources++
		}
	}
	if nSources > 1 {
		err = fmt.Errorf("only one of Teff, Mdot and Flux may be given")
		return
	}
	if ip.Radius != 0 && ip.RadiusRg != 0 {
		err = fmt.Errorf("only one of Radius and RadiusRg may be given")
		return
	}
	if sw := ip.Sweep; sw != nil && sw.NPoints < 2 {
		err = fmt.Errorf("a sweep needs at least 2 points, have %d", sw.NPoints)
		return
	}
	_, err = ip.Laws()
	return
}

func (ip *InputParameters) MassCGS() float64 { return ip.Mass * constants.MSun }

func (ip *InputParameters) Rg() float64 { return vertical.GravitationalRadius(ip.MassCGS()) }

func (ip *InputParameters) Rin() float64 { return ip.RinRg * ip.Rg() }

func (ip *InputParameters) RadiusCGS() float64 {
	if ip.RadiusRg > 0 {
		return ip.RadiusRg * ip.Rg()
	}
	return ip.Radius
}

// PhysicalInputs converts to CGS, deriving the flux from Teff or Mdot when given
func (ip *InputParameters) PhysicalInputs() (in vertical.PhysicalInputs, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	in = vertical.PhysicalInputs{
		Mass:   ip.MassCGS(),
		Alpha:  ip.Alpha,
		Radius: ip.RadiusCGS(),
		Flux:   ip.Flux,
		Eps:    ip.Eps,
		Mu:     ip.Mu,
	}
	switch {
	case ip.Teff != 0:
		in.Flux = vertical.FluxFromTeff(in.Mass, in.Radius, ip.Teff)
	case ip.Mdot != 0:
		in.Flux = vertical.FluxFromMdot(in.Mass, in.Radius, ip.Rin(), ip.Mdot)
	}
	err = in.Validate()
	return
}

func (ip *InputParameters) Laws() (physics.Laws, error) {
	return physics.NewLaws(ip.EOS, ip.Opacity, ip.Gradient, ip.Mu)
}

func (ip *InputParameters) Config() (cfg vertical.Config) {
	cfg = vertical.DefaultConfig()
	cfg.ProfilePoints = ip.ProfilePoints
	return
}

func (sw *SweepParameters) grid(lo, hi float64) []float64 {
	if sw.Geometric {
		return utils.Geomspace(lo, hi, sw.NPoints)
	}
	return utils.Linspace(lo, hi, sw.NPoints)
}

func (sw *SweepParameters) TeffGrid() []float64 { return sw.grid(sw.TeffMin, sw.TeffMax) }

// RadiusGrid is in cm
func (sw *SweepParameters) RadiusGrid(rg float64) []float64 {
	return sw.grid(sw.RMinRg*rg, sw.RMaxRg*rg)
}
