// Package constants holds the physical constants used throughout the solver.
// All values are CGS (CODATA 2018, IAU 2015 nominal solar values).
package constants

const (
	G       = 6.6743e-8            // Gravitational constant, cm^3 g^-1 s^-2
	SigmaSB = 5.670374419e-5       // Stefan-Boltzmann constant, erg cm^-2 s^-1 K^-4
	RGas    = 8.314462618e7        // Molar gas constant, erg K^-1 mol^-1
	C       = 2.99792458e10        // Speed of light, cm s^-1
	MSun    = 1.988409870698051e33 // Solar mass, g
	RSun    = 6.957e10             // Solar radius, cm
	H       = 6.62607015e-27       // Planck constant, erg s
	KB      = 1.380649e-16         // Boltzmann constant, erg K^-1
)
