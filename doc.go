// Package spintools is a toolbox for alkali-atom hyperfine physics and the
// RF hardware that drives it: level diagrams in a magnetic field, dressed
// states of an adiabatic passage, and the matching network between an RF
// source and its antenna.
//
// 🚀 What is inside?
//
//	• Atom models: immutable level descriptors for K40 and Rb87, YAML tables
//	• Spin algebra: angular-momentum matrices, Kronecker products, eigensolvers
//	• Breit-Rabi: closed form for J=1/2 and full numerical diagonalization
//	• Trace correction: undo the column swaps a per-point sort introduces
//	• Adiabatic passage: frequency and field sweeps of one F manifold
//	• Networks: S-parameters, lumped elements, cascades, Touchstone files
//	• Evolution: deterministic bounded differential evolution with polish
//	• Antenna: integrated-reflection objective and matching-network search
//	• Plotting: slider / play-pause / frame descriptors for animated figures
//
// Packages:
//
//	constants/ : physical constants (SI)
//	atom/      : isotopes, levels, g-factors, registry, YAML tables
//	spin/      : J_z, J_x, J_y, Kron, Eigenvalues (gonum EigenSym or Jacobi)
//	breitrabi/ : Energies, ManifoldEnergies, Numerical
//	trace/     : Correct, Swaps, SecondDifference
//	passage/   : FrequencySweep, FieldSweep
//	network/   : Network, Media, Cascade, ReadTouchstone
//	evolution/ : Minimize, Config
//	antenna/   : Objective, Optimize, built-in topologies
//	plotting/  : SliderNoSteps, SliderStep, PausePlay, LevelFigure
//	cmd/spintools: command line front end
//
// Quick example:
//
//	lvl := atom.Rb87Ground()
//	fields := floats.Span(make([]float64, 201), 0, 1000) // gauss
//	e, _ := breitrabi.Numerical(fields, lvl)           // joules, ascending
//	fixed := trace.Correct(e)                           // continuous levels
//
//	go install github.com/katalvlaran/spintools/cmd/spintools@latest
package spintools
