// SPDX-License-Identifier: MIT

package atom

import "errors"

var (
	// ErrInvalidLevel is returned when a level's quantum numbers are
	// inconsistent, or when an operation requires a different J.
	ErrInvalidLevel = errors.New("atom: invalid level")

	// ErrInvalidManifold is returned when F is not one of |I−J| … I+J.
	ErrInvalidManifold = errors.New("atom: invalid hyperfine manifold")

	// ErrUnknownLevel is returned by ByName for names not in the registry.
	ErrUnknownLevel = errors.New("atom: unknown level")

	// ErrBadTable is returned by LoadTable on malformed YAML tables.
	ErrBadTable = errors.New("atom: bad level table")
)

// ElectronSpin is the electronic spin S of every alkali level in the tables.
const ElectronSpin = 0.5

// Isotope holds the per-nucleus constants shared by all levels of a species.
type Isotope struct {
	Name string  // e.g. "K40"
	I    float64 // nuclear spin
	GI   float64 // nuclear g-factor (sign convention of the Zeeman term μ_B·g_I·I_z·B)
	S    float64 // electronic spin
}

// LevelSpec lists the tabulated constants of one fine-structure level.
type LevelSpec struct {
	Name string  // e.g. "4S1/2"
	L    float64 // orbital angular momentum
	J    float64 // total electronic angular momentum
	AHF  float64 // magnetic-dipole hyperfine constant (Hz)
	BHF  float64 // electric-quadrupole hyperfine constant (Hz)
}

// Level is an immutable descriptor of one fine-structure level of an isotope.
type Level struct {
	Isotope

	Name     string  // level name, e.g. "4S1/2"
	L        float64 // orbital angular momentum
	J        float64 // total electronic angular momentum
	GJ       float64 // Landé g_J
	AHF      float64 // a_hf (Hz)
	BHF      float64 // b_hf (Hz)
	DeltaEHF float64 // Δν_hf = a_hf·(I+1/2) (Hz)
}

// ID returns the registry key "<isotope>-<level>".
func (l Level) ID() string { return l.Isotope.Name + "-" + l.Name }
