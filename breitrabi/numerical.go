// SPDX-License-Identifier: MIT

package breitrabi

import (
	"fmt"

	"github.com/katalvlaran/spintools/atom"
	"github.com/katalvlaran/spintools/constants"
	"github.com/katalvlaran/spintools/spin"
	"gonum.org/v1/gonum/mat"
)

// Numerical diagonalizes the hyperfine + Zeeman Hamiltonian of lvl at each
// field value (gauss) and returns the eigenvalues (J), ascending per row.
//
// Hamiltonian on the |m_I⟩⊗|m_J⟩ product space, in Hz:
//
//	H/h = a·(I·J)
//	    + b·[3(I·J)² + (3/2)(I·J) − I(I+1)J(J+1)] / [2I(2I−1)·J(2J−1)]   (I ≥ 1, J ≥ 1)
//	    + (μ_B/h)·(g_J J_z + g_I I_z)·B
//
// The quadrupole term vanishes identically for I < 1 or J < 1 and is skipped.
//
// Stage 1: build I and J operators and their Kronecker products once.
// Stage 2: per field point, add the Zeeman term and diagonalize.
//
// Errors: ErrEmptyField, atom.ErrInvalidLevel (J ≤ 0 or non half-integer
// spins), solver errors from spin.Eigenvalues.
// Complexity: O(len(fieldGauss)·d³), d = (2I+1)(2J+1).
func Numerical(fieldGauss []float64, lvl atom.Level, opts ...spin.Option) (*mat.Dense, error) {
	if len(fieldGauss) == 0 {
		return nil, ErrEmptyField
	}
	if lvl.J <= 0 {
		return nil, fmt.Errorf("%s: J=%g: %w", lvl.ID(), lvl.J, atom.ErrInvalidLevel)
	}

	// Stage 1: field-independent operators.
	hf, zeeman, err := hamiltonianParts(lvl)
	if err != nil {
		return nil, err
	}

	// Stage 2: diagonalize per field point.
	var (
		dim = lvl.Multiplicity()
		out = mat.NewDense(len(fieldGauss), dim, nil)
		h   = mat.NewDense(dim, dim, nil)
	)
	for i, g := range fieldGauss {
		h.Scale(g*constants.GaussToTesla, zeeman)
		h.Add(h, hf)
		vals, err := spin.Eigenvalues(h, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: B=%g G: %w", lvl.ID(), g, err)
		}
		for k := range vals {
			vals[k] *= constants.H
		}
		out.SetRow(i, vals)
	}

	return out, nil
}

// hamiltonianParts returns the hyperfine Hamiltonian and the Zeeman
// Hamiltonian per tesla, both in Hz.
func hamiltonianParts(lvl atom.Level) (hf, zeeman *mat.Dense, err error) {
	ix, err := spin.Jx(lvl.I)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: I: %w", lvl.ID(), atom.ErrInvalidLevel)
	}
	iyIm, _ := spin.JyIm(lvl.I)
	iz, _ := spin.Jz(lvl.I)
	jx, err := spin.Jx(lvl.J)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: J: %w", lvl.ID(), atom.ErrInvalidLevel)
	}
	jyIm, _ := spin.JyIm(lvl.J)
	jz, _ := spin.Jz(lvl.J)

	var (
		nI, _ = spin.Dim(lvl.I)
		nJ, _ = spin.Dim(lvl.J)
		idI   = spin.Identity(nI)
		idJ   = spin.Identity(nJ)
		dim   = nI * nJ
	)

	// I·J = IxJx + IyJy + IzJz, with IyJy = −(IyIm⊗JyIm).
	ij := spin.Kron(ix, jx)
	ij.Sub(ij, spin.Kron(iyIm, jyIm))
	ij.Add(ij, spin.Kron(iz, jz))

	hf = mat.NewDense(dim, dim, nil)
	hf.Scale(lvl.AHF, ij)

	if lvl.BHF != 0 && lvl.I >= 1 && lvl.J >= 1 {
		var q, ij2 mat.Dense
		ij2.Mul(ij, ij)
		q.Scale(3, &ij2)
		q.Add(&q, scaled(1.5, ij))
		q.Sub(&q, scaled(lvl.I*(lvl.I+1)*lvl.J*(lvl.J+1), spin.Identity(dim)))
		norm := 2 * lvl.I * (2*lvl.I - 1) * lvl.J * (2*lvl.J - 1)
		q.Scale(lvl.BHF/norm, &q)
		hf.Add(hf, &q)
	}

	zeeman = spin.Kron(idI, jz)
	zeeman.Scale(lvl.GJ, zeeman)
	zeeman.Add(zeeman, scaled(lvl.GI, spin.Kron(iz, idJ)))
	zeeman.Scale(constants.MuB/constants.H, zeeman)

	return hf, zeeman, nil
}

func scaled(f float64, a mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Scale(f, a)

	return &out
}
