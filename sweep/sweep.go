/*
Package sweep runs many independent vertical structure solves concurrently:
S-curves at fixed radius over a range of effective temperatures, and radial
profiles at fixed accretion rate over a range of radii. Each point owns its own
solve session; a failed point is recorded with its error and skipped.
*/
package sweep

import (
	"context"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/vertstruct/physics"
	"github.com/notargets/vertstruct/vertical"
)

// Factory opens a solve session for one annulus
type Factory func(in vertical.PhysicalInputs) (*vertical.Structure, error)

// NewFactory shares one set of physics laws between sessions, the laws hold no state
func NewFactory(laws physics.Laws, opts ...vertical.Option) Factory {
	return func(in vertical.PhysicalInputs) (*vertical.Structure, error) {
		return vertical.NewStructure(in, laws, opts...)
	}
}

type Point struct {
	Index  int
	Inputs vertical.PhysicalInputs
	Teff   float64 // K
	Mdot   float64 // g/s
	Result *vertical.ConvergedStructure
	Err    error
}

func (p Point) OK() bool { return p.Err == nil && p.Result != nil }

type Sweeper struct {
	Factory Factory
	Workers int
	Rin     float64 // Inner disc edge used to convert between flux and Mdot, cm
	Logger  log.FieldLogger
}

func NewSweeper(factory Factory, workers int, rin float64) (sw *Sweeper) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sw = &Sweeper{
		Factory: factory,
		Workers: workers,
		Rin:     rin,
		Logger:  log.StandardLogger(),
	}
	return
}

/*
Run solves every input, at most Workers at a time, and returns one Point per
input in input order. Failed solves are reported in Point.Err. The only error
returned is the context error when ctx is cancelled, which stops new solves
from starting.
*/
func (sw *Sweeper) Run(ctx context.Context, inputs []vertical.PhysicalInputs) (points []Point, err error) {
	points = make([]Point, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sw.Workers)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			points[i] = sw.solve(i, in)
			return nil
		})
	}
	if err = g.Wait(); err == nil {
		err = ctx.Err()
	}
	return
}

func (sw *Sweeper) solve(i int, in vertical.PhysicalInputs) (p Point) {
	var (
		vs  *vertical.Structure
		err error
	)
	p = Point{Index: i, Inputs: in}
	if in.Flux > 0 {
		p.Mdot = vertical.MdotFromFlux(in.Mass, in.Radius, sw.Rin, in.Flux)
	}
	defer func() {
		if p.Err != nil {
			sw.Logger.WithFields(log.Fields{
				"index":  i,
				"radius": in.Radius,
				"flux":   in.Flux,
				"error":  p.Err,
			}).Warn("sweep point failed")
		}
	}()
	if vs, err = sw.Factory(in); err != nil {
		p.Err = err
		return
	}
	p.Teff = vs.Teff()
	if p.Result, p.Err = vs.Fit(); p.Err != nil {
		return
	}
	sw.Logger.WithFields(log.Fields{
		"index": i,
		"teff":  p.Teff,
		"z0r":   p.Result.Z0r,
	}).Debug("sweep point converged")
	return
}

// SCurve solves one annulus of base for every effective temperature in teffs
func (sw *Sweeper) SCurve(ctx context.Context, base vertical.PhysicalInputs, teffs []float64) (points []Point, err error) {
	inputs := make([]vertical.PhysicalInputs, len(teffs))
	for i, teff := range teffs {
		inputs[i] = base
		inputs[i].Flux = vertical.FluxFromTeff(base.Mass, base.Radius, teff)
	}
	return sw.Run(ctx, inputs)
}

// Radial solves a stationary disc with accretion rate mdot at every radius in radii
func (sw *Sweeper) Radial(ctx context.Context, base vertical.PhysicalInputs, mdot float64, radii []float64) (points []Point, err error) {
	inputs := make([]vertical.PhysicalInputs, len(radii))
	for i, r := range radii {
		if r <= sw.Rin {
			err = fmt.Errorf("radius %g cm is inside the inner edge %g cm", r, sw.Rin)
			return
		}
		inputs[i] = base
		inputs[i].Radius = r
		inputs[i].Flux = vertical.FluxFromMdot(base.Mass, r, sw.Rin, mdot)
	}
	return sw.Run(ctx, inputs)
}

// Failed counts points without a converged structure
func Failed(points []Point) (n int) {
	for _, p := range points {
		if !p.OK() {
			n++
		}
	}
	return
}
