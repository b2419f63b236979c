// SPDX-License-Identifier: MIT

// Package atom describes the atomic levels used by the hyperfine and
// adiabatic-passage solvers.
//
// A Level is a plain value: nuclear spin I, orbital/spin/total angular
// momenta L, S, J, the g-factors g_I and g_J, the hyperfine coefficients
// a_hf and b_hf (Hz) and the derived zero-field splitting Δν_hf = a_hf·(I+1/2).
// Levels are built once by NewLevel (or the factories K40Ground, Rb87Ground, …)
// and never mutated afterwards; passing them by value keeps every computation
// the sole owner of its copy.
//
// Built-in tables:
//
//	K40   I=4    g_I=+0.000176490   4S J=1/2, 4P J=3/2
//	Rb87  I=3/2  g_I=−0.0009951414  5S J=1/2, 5P J=3/2
//
// Custom tables can be read from YAML with LoadTable:
//
//	isotopes:
//	  - name: Na23
//	    I: 1.5
//	    gI: -0.0008046108
//	    levels:
//	      - {name: 3S1/2, L: 0, J: 0.5, aHF: 885.8130644e6}
package atom
