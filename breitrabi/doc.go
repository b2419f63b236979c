// SPDX-License-Identifier: MIT

// Package breitrabi computes hyperfine energy levels of an atomic level in a
// static magnetic field.
//
// Two routes are provided:
//
//   - Energies: the Breit-Rabi closed form for a J=1/2 level, one hyperfine
//     manifold F = I ± 1/2 at a time. Columns are m_F = −F … F.
//   - Numerical: diagonalization of the full hyperfine + Zeeman Hamiltonian
//     on the (2I+1)(2J+1) product space, valid for any J. Columns are the
//     ascending eigenvalues.
//
// Fields are given in gauss; energies are returned in joules. Rows of every
// returned matrix are field points, so the result can be fed directly to
// trace.Correct.
//
// Breit-Rabi formula (x = μ_B(g_J − g_I)B / hΔν_hf):
//
//	E(F=I±1/2, m) = −hΔν/2(2I+1) + g_I μ_B m B ± (hΔν/2)·√(1 + 4mx/(2I+1) + x²)
//
// The square root is singular for the stretched states m = ±(I+1/2) of the
// upper manifold, where it must be read as the linear form (hΔν/2)(1 ± x).
package breitrabi
