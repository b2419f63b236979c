// SPDX-License-Identifier: MIT

// Package passage simulates adiabatic passage in one hyperfine manifold F
// driven by a static field B and a weak transverse RF field B_rf.
//
// In the frame rotating with the RF field the manifold Hamiltonian is
//
//	H/ħ = Δ·F_z + ω_q·(1 − (2F_z/(2I+1))²) + (Ω/2)·F_x
//
// with the Larmor frequency ω_L = g_F μ_B B/ħ, the detuning Δ = ω_L − ω_rf,
// the quadratic Zeeman shift ω_q = (g_J − g_I)² μ_B² B² / (4ħ·h·2π·Δν_hf)
// and the Rabi frequency Ω = g_F μ_B B_rf/ħ.
//
// Two sweeps are offered:
//
//   - FrequencySweep: B fixed, ω_rf swept around ω_L. ω_q is constant.
//   - FieldSweep: ω_rf fixed, B swept around the resonant field 2πfħ/(g_F μ_B);
//     ω_L and ω_q are recomputed at every point.
//
// Both return the sorted eigenvalues (J) at each sweep point as a
// Points×(2F+1) matrix, ready for trace.Correct.
package passage
