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

	"github.com/spf13/cobra"

	"github.com/notargets/vertstruct/InputParameters"
	"github.com/notargets/vertstruct/sweep"
	"github.com/notargets/vertstruct/vertical"
)

// RadialCmd represents the radial command
var RadialCmd = &cobra.Command{
	Use:   "radial",
	Short: "Sweep the radius of a stationary disc at fixed accretion rate",
	Long: `
Solves the disc at every radius of the Sweep grid (RMinRg to RMaxRg, in units of
2GM/c^2) for the Mdot of the input file and writes r, Teff and z0/r per point.

vertstruct radial -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("radial called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		outFile, _ := cmd.Flags().GetString("output")
		runSweep(processInput(icFile), outFile, RunRadial)
	},
}

func init() {
	rootCmd.AddCommand(RadialCmd)
	addInputFlags(RadialCmd)
}

// RunRadial writes one line per radius of the sweep grid
func RunRadial(ctx context.Context, ip *InputParameters.InputParameters, w io.Writer) (points []sweep.Point, err error) {
	var (
		sw   *sweep.Sweeper
		base vertical.PhysicalInputs
	)
	if ip.Mdot <= 0 {
		err = fmt.Errorf("a radial sweep needs a positive Mdot")
		return
	}
	if ip.Sweep == nil || ip.Sweep.RMinRg <= ip.RinRg || ip.Sweep.RMaxRg <= ip.RinRg {
		err = fmt.Errorf("a radial sweep needs a Sweep section with RMinRg and RMaxRg outside RinRg = %g", ip.RinRg)
		return
	}
	if sw, base, err = newSweeper(ip); err != nil {
		return
	}
	if points, err = sw.Radial(ctx, base, ip.Mdot, ip.Sweep.RadiusGrid(ip.Rg())); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "# Mdot = %g g/s\n# r Teff z0/r\n", ip.Mdot); err != nil {
		return
	}
	err = writePoints(w, points, func(p sweep.Point) []float64 {
		return []float64{p.Inputs.Radius, p.Teff, p.Result.Z0r}
	})
	return
}
