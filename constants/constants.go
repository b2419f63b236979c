// SPDX-License-Identifier: MIT

// Package constants holds the physical constants shared by the hyperfine,
// adiabatic-passage and antenna packages. SI units throughout.
package constants

import "math"

const (
	// E is the elementary charge in coulomb.
	E = 1.602176634e-19

	// Me is the electron mass in kilogram.
	Me = 9.1093837015e-31

	// Mp is the proton mass in kilogram.
	Mp = 1.67262192369e-27

	// H is the Planck constant in J·s.
	H = 6.62607015e-34

	// Hbar is the reduced Planck constant H/2π in J·s.
	Hbar = H / (2 * math.Pi)

	// MuB is the Bohr magneton in J/T.
	MuB = E * Hbar / (2 * Me)

	// MuN is the nuclear magneton in J/T.
	MuN = E * Hbar / (2 * Mp)

	// GL is the orbital g-factor of the electron, corrected for the reduced mass.
	GL = 0.99998627

	// GE is the electron spin g-factor.
	GE = 2.0023193043737

	// C is the speed of light in vacuum in m/s.
	C = 299792458.0

	// GaussToTesla converts a field in gauss to tesla.
	GaussToTesla = 1e-4
)
