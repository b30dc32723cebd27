/*
Package vertical solves the vertical structure of a thin, optically thick
accretion disc at one radius.

The four dimensionless unknowns S (mass column), P (pressure), Q (energy flux)
and T (temperature) are integrated from the photosphere (t = 0) to the symmetry
plane (t = 1). The half thickness z0 is the one free parameter and is found by
shooting on the condition that no flux crosses the symmetry plane, Q(1) = 0.
*/
package vertical

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/vertstruct/ode"
	"github.com/notargets/vertstruct/physics"
	"github.com/notargets/vertstruct/rootfind"
)

type Config struct {
	InteriorMethod    ode.Method
	PhotosphereMethod ode.Method
	ATol              float64 // Absolute tolerance of both integrations
	PressureFloor     float64 // Starting pressure at tau = 0, in units of PNorm
	MaxBracketSteps   int     // Budget of trial points while bracketing z0/r
	ProfilePoints     int     // Samples of the converged profile, >= 3
	Brent             rootfind.BrentConfig
}

func DefaultConfig() Config {
	return Config{
		InteriorMethod:    ode.Fehlberg4,
		PhotosphereMethod: ode.DoPri5,
		ATol:              1.e-6,
		PressureFloor:     1.e-7,
		MaxBracketSteps:   60,
		ProfilePoints:     100,
		Brent:             rootfind.DefaultBrentConfig(),
	}
}

// Structure is one solve session, it must not be shared between goroutines
type Structure struct {
	Inputs     PhysicalInputs
	Laws       physics.Laws
	Config     Config
	Logger     log.FieldLogger
	initialZ0r float64
	scales     ScaleConstants
	converged  *ConvergedStructure
}

type Option func(vs *Structure)

func WithConfig(cfg Config) Option {
	return func(vs *Structure) { vs.Config = cfg }
}

func WithLogger(logger log.FieldLogger) Option {
	return func(vs *Structure) { vs.Logger = logger }
}

// WithInitialZ0r replaces the analytic starting estimate of z0/r
func WithInitialZ0r(z0r float64) Option {
	return func(vs *Structure) { vs.initialZ0r = z0r }
}

func NewStructure(in PhysicalInputs, laws physics.Laws, opts ...Option) (vs *Structure, err error) {
	in = in.WithDefaults()
	if err = in.Validate(); err != nil {
		return
	}
	if laws.EOS == nil || laws.Opacity == nil || laws.Gradient == nil {
		err = fmt.Errorf("incomplete physics: %+v", laws)
		return
	}
	vs = &Structure{
		Inputs:     in,
		Laws:       laws,
		Config:     DefaultConfig(),
		Logger:     log.StandardLogger(),
		initialZ0r: Z0rInit(in),
	}
	for _, opt := range opts {
		opt(vs)
	}
	if !(vs.initialZ0r > 0) {
		vs, err = nil, &InvalidInputError{Field: "InitialZ0r", Value: vs.initialZ0r, Reason: "must be positive"}
		return
	}
	if vs.Config.ProfilePoints < 3 {
		vs, err = nil, fmt.Errorf("at least 3 profile points are needed, have %d", vs.Config.ProfilePoints)
		return
	}
	vs.SetZ0(vs.initialZ0r * in.Radius)
	return
}

// NewIdealKramers uses an ideal gas with the Kramers opacity law
func NewIdealKramers(in PhysicalInputs, opts ...Option) (vs *Structure, err error) {
	return newIdeal(in, physics.NewKramers(), opts...)
}

// NewIdealBellLin1994 uses an ideal gas with the Bell & Lin (1994) two process opacity
func NewIdealBellLin1994(in PhysicalInputs, opts ...Option) (vs *Structure, err error) {
	return newIdeal(in, physics.NewBellLin1994(), opts...)
}

func newIdeal(in PhysicalInputs, op physics.Opacity, opts ...Option) (vs *Structure, err error) {
	in = in.WithDefaults()
	if err = in.Validate(); err != nil {
		return
	}
	laws := physics.Laws{
		EOS:      physics.NewIdealGas(in.Mu),
		Opacity:  op,
		Gradient: physics.NewRadiative(),
	}
	return NewStructure(in, laws, opts...)
}

// SetZ0 moves the session to a new half thickness and rescales
func (vs *Structure) SetZ0(z0 float64) {
	vs.scales = NewScaleConstants(vs.Inputs, z0)
}

func (vs *Structure) Z0() float64 { return vs.scales.Z0 }

func (vs *Structure) Z0r() float64 { return vs.scales.Z0 / vs.Inputs.Radius }

func (vs *Structure) Teff() float64 { return vs.scales.Teff }

func (vs *Structure) Scales() ScaleConstants { return vs.scales }

// Converged returns the result of the last successful Fit, or nil
func (vs *Structure) Converged() *ConvergedStructure { return vs.converged }
