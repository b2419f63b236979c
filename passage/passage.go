// SPDX-License-Identifier: MIT

package passage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spintools/atom"
	"github.com/katalvlaran/spintools/constants"
	"github.com/katalvlaran/spintools/spin"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// manifold holds the field-independent operators of one F manifold.
type manifold struct {
	lvl  atom.Level
	F    float64
	gF   float64
	dim  int
	fz   *mat.Dense // F_z
	fx   *mat.Dense // F_x
	quad *mat.Dense // 1 − (2F_z/(2I+1))²
}

func newManifold(lvl atom.Level, F float64) (*manifold, error) {
	if err := lvl.ValidateF(F); err != nil {
		return nil, err
	}
	if F <= 0 {
		return nil, fmt.Errorf("%s: F=0 has no Zeeman structure: %w", lvl.ID(), atom.ErrInvalidManifold)
	}
	if lvl.DeltaEHF == 0 {
		return nil, fmt.Errorf("%s: zero hyperfine splitting: %w", lvl.ID(), atom.ErrInvalidLevel)
	}
	gF := lvl.GF(F)
	if gF == 0 {
		return nil, fmt.Errorf("%s: g_F=0 for F=%g: %w", lvl.ID(), F, ErrBadSweep)
	}

	fz, err := spin.Jz(F)
	if err != nil {
		return nil, err
	}
	fx, _ := spin.Jx(F)
	dim, _ := spin.Dim(F)

	quad := spin.Identity(dim)
	for k := 0; k < dim; k++ {
		r := 2 * fz.At(k, k) / (2*lvl.I + 1)
		quad.Set(k, k, 1-r*r)
	}

	return &manifold{lvl: lvl, F: F, gF: gF, dim: dim, fz: fz, fx: fx, quad: quad}, nil
}

// larmor returns ω_L (rad/s) at field b (T).
func (m *manifold) larmor(b float64) float64 {
	return m.gF * constants.MuB * b / constants.Hbar
}

// quadratic returns ω_q (rad/s) at field b (T).
func (m *manifold) quadratic(b float64) float64 {
	dg := m.lvl.GJ - m.lvl.GI
	return dg * dg * constants.MuB * constants.MuB * b * b /
		(4 * constants.Hbar * constants.H * 2 * math.Pi * m.lvl.DeltaEHF)
}

// rabi returns Ω (rad/s) for RF amplitude brf (T).
func (m *manifold) rabi(brf float64) float64 {
	return m.gF * constants.MuB * brf / constants.Hbar
}

// energies diagonalizes Δ·F_z + ω_q·Q + (Ω/2)·F_x and returns ħ·eigenvalues.
func (m *manifold) energies(h *mat.Dense, detuning, wq, rabi float64) ([]float64, error) {
	h.Scale(detuning, m.fz)
	h.Add(h, scaled(wq, m.quad))
	h.Add(h, scaled(rabi/2, m.fx))
	vals, err := spin.Eigenvalues(h)
	if err != nil {
		return nil, err
	}
	for k := range vals {
		vals[k] *= constants.Hbar
	}

	return vals, nil
}

// FrequencySweep holds B fixed and sweeps the RF frequency over
// f_L ± SpanHz/2, f_L = ω_L/2π.
//
// Errors: ErrBadSweep for Points < 2, non-positive or non-finite span,
// negative RF amplitude or g_F = 0; atom.ErrInvalidManifold for F outside
// the level's manifolds or F = 0.
// Complexity: O(Points·(2F+1)³).
func FrequencySweep(lvl atom.Level, F float64, opts FrequencySweepOptions) (Sweep, error) {
	if err := checkSweep(opts.Points, opts.SpanHz, opts.RFGauss); err != nil {
		return Sweep{}, err
	}
	m, err := newManifold(lvl, F)
	if err != nil {
		return Sweep{}, err
	}

	var (
		b       = opts.FieldGauss * constants.GaussToTesla
		fL      = m.larmor(b) / (2 * math.Pi)
		wq      = m.quadratic(b)
		rabi    = m.rabi(opts.RFGauss * constants.GaussToTesla)
		offsets = floats.Span(make([]float64, opts.Points), -opts.SpanHz/2, opts.SpanHz/2)
		axis    = make([]float64, opts.Points)
		eig     = mat.NewDense(opts.Points, m.dim, nil)
		h       = mat.NewDense(m.dim, m.dim, nil)
	)
	for i, delta := range offsets {
		vals, err := m.energies(h, 2*math.Pi*delta, wq, rabi)
		if err != nil {
			return Sweep{}, fmt.Errorf("FrequencySweep: offset %g Hz: %w", delta, err)
		}
		eig.SetRow(i, vals)
		axis[i] = fL + delta
	}

	return Sweep{Axis: axis, Eigenvalues: eig}, nil
}

// FieldSweep holds the RF frequency fixed and sweeps the static field over
// B_c ± SpanGauss/2, where B_c = 2πfħ/(g_F μ_B) is the resonant field.
// B_c is negative for manifolds with g_F < 0.
//
// Errors: as FrequencySweep.
// Complexity: O(Points·(2F+1)³).
func FieldSweep(lvl atom.Level, F float64, opts FieldSweepOptions) (Sweep, error) {
	if err := checkSweep(opts.Points, opts.SpanGauss, opts.RFGauss); err != nil {
		return Sweep{}, err
	}
	if math.IsNaN(opts.FrequencyHz) || math.IsInf(opts.FrequencyHz, 0) {
		return Sweep{}, fmt.Errorf("FieldSweep: frequency %g: %w", opts.FrequencyHz, ErrBadSweep)
	}
	m, err := newManifold(lvl, F)
	if err != nil {
		return Sweep{}, err
	}

	var (
		wrf     = 2 * math.Pi * opts.FrequencyHz
		center  = wrf * constants.Hbar / (m.gF * constants.MuB)
		rabi    = m.rabi(opts.RFGauss * constants.GaussToTesla)
		offsets = floats.Span(make([]float64, opts.Points), -opts.SpanGauss/2, opts.SpanGauss/2)
		axis    = make([]float64, opts.Points)
		eig     = mat.NewDense(opts.Points, m.dim, nil)
		h       = mat.NewDense(m.dim, m.dim, nil)
	)
	for i, off := range offsets {
		b := center + off*constants.GaussToTesla
		vals, err := m.energies(h, m.larmor(b)-wrf, m.quadratic(b), rabi)
		if err != nil {
			return Sweep{}, fmt.Errorf("FieldSweep: B=%g T: %w", b, err)
		}
		eig.SetRow(i, vals)
		axis[i] = b / constants.GaussToTesla
	}

	return Sweep{Axis: axis, Eigenvalues: eig}, nil
}

func checkSweep(points int, span, rf float64) error {
	switch {
	case points < 2:
		return fmt.Errorf("points=%d: %w", points, ErrBadSweep)
	case math.IsNaN(span) || math.IsInf(span, 0) || span <= 0:
		return fmt.Errorf("span=%g: %w", span, ErrBadSweep)
	case math.IsNaN(rf) || math.IsInf(rf, 0) || rf < 0:
		return fmt.Errorf("rf amplitude=%g: %w", rf, ErrBadSweep)
	}

	return nil
}

func scaled(f float64, a mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Scale(f, a)

	return &out
}
