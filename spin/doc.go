// SPDX-License-Identifier: MIT

// Package spin builds angular-momentum operators and diagonalizes the small
// real symmetric Hamiltonians assembled from them.
//
// Basis ordering follows the usual |j, m⟩ convention with m descending
// (m = j, j−1, …, −j), so Jz is diag(j, …, −j).
//
// J_y is purely imaginary in this basis. It is represented by its real
// antisymmetric factor JyIm (J_y = i·JyIm), which keeps every Hamiltonian in
// this module real: products such as I_y⊗J_y become −(IyIm⊗JyIm).
//
// Eigenvalues are computed with gonum's mat.EigenSym; WithJacobi switches to
// cyclic-pivot Jacobi rotations, mainly as an independent cross-check.
package spin
