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
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/vertstruct/InputParameters"
	"github.com/notargets/vertstruct/vertical"
)

const exampleFile = `
########################################
Title: "Dwarf nova annulus"
Mass: 1.5           # Solar masses
Alpha: 0.3
Radius: 7.e+10      # cm, or RadiusRg in units of 2GM/c^2
Teff: 1.e+4         # K, or Mdot [g/s] with RinRg, or Flux
Opacity: BellLin1994 # Can be Kramers
########################################
`

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the vertical structure at one radius",
	Long: `
Finds the half thickness of the disc and writes the converged vertical profile
as whitespace separated columns: t S P Q T z[cm] rho[g/cm^3] T[K] P[dyn/cm^2]

vertstruct solve -I input.yaml -o profile.dat`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("solve called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		outFile, _ := cmd.Flags().GetString("output")
		ip := processInput(icFile)
		err := withOutput(outFile, func(w io.Writer) (err error) {
			_, err = RunSolve(ip, w)
			return
		})
		if err != nil {
			exitOn(err)
		}
	},
}

// withOutput runs write against the named file, or standard output if the name is
// empty. The file is closed before returning and a failed close is reported.
func withOutput(outFile string, write func(w io.Writer) error) (err error) {
	var (
		f *os.File
	)
	if len(outFile) == 0 {
		return write(os.Stdout)
	}
	if f, err = os.Create(outFile); err != nil {
		return
	}
	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", outFile, cerr)
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	addInputFlags(SolveCmd)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Mass, Alpha, Radius\n\t- Teff or Mdot\n\t- Opacity")
	cmd.Flags().StringP("output", "o", "", "file to write the results to, default is standard output")
}

func processInput(icFile string) (ip *InputParameters.InputParameters) {
	var (
		err  error
		data []byte
	)
	if len(icFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		exitOn(err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		exitOn(err)
	}
	ip.Print()
	return
}

func exitOn(err error) {
	fmt.Printf("error: %s\n", err.Error())
	os.Exit(1)
}

// RunSolve fits one annulus and writes its profile to w
func RunSolve(ip *InputParameters.InputParameters, w io.Writer) (cs *vertical.ConvergedStructure, err error) {
	var (
		in vertical.PhysicalInputs
		vs *vertical.Structure
	)
	if in, err = ip.PhysicalInputs(); err != nil {
		return
	}
	laws, _ := ip.Laws()
	if vs, err = vertical.NewStructure(in, laws,
		vertical.WithConfig(ip.Config()), vertical.WithLogger(log.StandardLogger())); err != nil {
		return
	}
	fmt.Printf("%s\n%s\n", in, laws)
	if cs, err = vs.Fit(); err != nil {
		return
	}
	printSummary(cs)
	err = writeProfile(w, cs)
	return
}

func printSummary(cs *vertical.ConvergedStructure) {
	d := cs.Diagnostic
	fmt.Printf("z0/r = %.8g, z0 = %.6g cm, Teff = %.6g K\n", cs.Z0r, cs.Z0, cs.Teff)
	fmt.Printf("%s\n", cs.Midplane)
	fmt.Printf("Pi = [%.5g, %.5g, %.5g, %.5g], tau = %.5g, tau0 = %.5g\n",
		cs.Pi[0], cs.Pi[1], cs.Pi[2], cs.Pi[3], cs.Tau, cs.Tau0)
	fmt.Printf("bracket [%.6g, %.6g] in %d steps, %d iterations, residual = %.3g (%s)\n",
		d.BracketLo, d.BracketHi, d.BracketSteps, d.Iterations, d.Residual, d.Message)
}

func writeProfile(w io.Writer, cs *vertical.ConvergedStructure) (err error) {
	sp := cs.Profile
	if _, err = fmt.Fprintf(w, "# z0/r = %.10g  Sigma0 = %.8g  Pi = %.6g %.6g %.6g %.6g  tau = %.6g\n",
		cs.Z0r, cs.Midplane.Sigma0, cs.Pi[0], cs.Pi[1], cs.Pi[2], cs.Pi[3], cs.Tau); err != nil {
		return
	}
	if _, err = fmt.Fprintln(w, "# t S P Q T z rho Temp Pres"); err != nil {
		return
	}
	for j := 0; j < sp.Len(); j++ {
		var (
			sv                 = sp.At(j)
			z, rho, temp, pres = cs.Physical(j)
		)
		if _, err = fmt.Fprintf(w, "%.6f %.8e %.8e %.8e %.8e %.8e %.8e %.8e %.8e\n",
			sp.T[j], sv[vertical.MassColumn], sv[vertical.Pressure], sv[vertical.Flux], sv[vertical.Temperature],
			z, rho, temp, pres); err != nil {
			return
		}
	}
	return
}
