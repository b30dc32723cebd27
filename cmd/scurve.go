/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/vertstruct/InputParameters"
	"github.com/notargets/vertstruct/sweep"
	"github.com/notargets/vertstruct/utils"
	"github.com/notargets/vertstruct/vertical"
)

// SCurveCmd represents the scurve command
var SCurveCmd = &cobra.Command{
	Use:   "scurve",
	Short: "Sweep the effective temperature at one radius",
	Long: `
Solves one annulus for every effective temperature of the Sweep grid in the input
file and writes Sigma0, Teff, Mdot and z0/r per point. Points that fail to
converge are reported and skipped.

vertstruct scurve -I input.yaml -w 8`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scurve called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		outFile, _ := cmd.Flags().GetString("output")
		runSweep(processInput(icFile), outFile, RunSCurve)
	},
}

func init() {
	rootCmd.AddCommand(SCurveCmd)
	addInputFlags(SCurveCmd)
}

type sweepRunner func(ctx context.Context, ip *InputParameters.InputParameters, w io.Writer) ([]sweep.Point, error)

func runSweep(ip *InputParameters.InputParameters, outFile string, run sweepRunner) {
	var (
		points []sweep.Point
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := withOutput(outFile, func(w io.Writer) (err error) {
		points, err = run(ctx, ip, w)
		return
	})
	stop()
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("%d points, %d failed, %s\n", len(points), sweep.Failed(points), utils.GetMemUsage())
}

func newSweeper(ip *InputParameters.InputParameters) (sw *sweep.Sweeper, base vertical.PhysicalInputs, err error) {
	if ip.Sweep == nil {
		err = fmt.Errorf("input file has no Sweep section")
		return
	}
	// The grid replaces the energy release of the file, any single value is ignored
	grid := *ip
	grid.Teff, grid.Mdot, grid.Flux = 0, 0, 1
	if grid.Radius == 0 && grid.RadiusRg == 0 {
		grid.Radius = 1
	}
	if base, err = grid.PhysicalInputs(); err != nil {
		return
	}
	laws, _ := ip.Laws()
	workers := ip.Sweep.Workers
	if viper.IsSet("workers") && viper.GetInt("workers") > 0 {
		workers = viper.GetInt("workers")
	}
	factory := sweep.NewFactory(laws, vertical.WithConfig(ip.Config()), vertical.WithLogger(log.StandardLogger()))
	sw = sweep.NewSweeper(factory, workers, ip.Rin())
	return
}

// RunSCurve writes one line per Teff of the sweep grid
func RunSCurve(ctx context.Context, ip *InputParameters.InputParameters, w io.Writer) (points []sweep.Point, err error) {
	var (
		sw   *sweep.Sweeper
		base vertical.PhysicalInputs
	)
	if ip.Sweep == nil || ip.Sweep.TeffMin <= 0 || ip.Sweep.TeffMax <= 0 {
		err = fmt.Errorf("an S-curve needs a Sweep section with positive TeffMin and TeffMax")
		return
	}
	if sw, base, err = newSweeper(ip); err != nil {
		return
	}
	if points, err = sw.SCurve(ctx, base, ip.Sweep.TeffGrid()); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "# r = %g cm\n# Sigma0 Teff Mdot z0/r\n", base.Radius); err != nil {
		return
	}
	err = writePoints(w, points, func(p sweep.Point) []float64 {
		return []float64{p.Result.Midplane.Sigma0, p.Teff, p.Mdot, p.Result.Z0r}
	})
	return
}

func writePoints(w io.Writer, points []sweep.Point, columns func(p sweep.Point) []float64) (err error) {
	for _, p := range points {
		if !p.OK() {
			if _, err = fmt.Fprintf(w, "# point %d failed: %v\n", p.Index, p.Err); err != nil {
				return
			}
			continue
		}
		for i, c := range columns(p) {
			sep := " "
			if i == 0 {
				sep = ""
			}
			if _, err = fmt.Fprintf(w, "%s%.8e", sep, c); err != nil {
				return
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}
	return
}
