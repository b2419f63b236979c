// SPDX-License-Identifier: MIT

package breitrabi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spintools/atom"
	"github.com/katalvlaran/spintools/constants"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyField is returned when no field values are supplied.
var ErrEmptyField = errors.New("breitrabi: empty field sequence")

// manifoldEps is the tolerance when matching F against I ± J.
const manifoldEps = 1e-9

// Energies returns the Breit-Rabi energies (J) of every sub-level m_F = −F … F
// of manifold F at each field value (gauss).
//
// Preconditions:
//   - lvl.J == 1/2, otherwise atom.ErrInvalidLevel;
//   - F == I+1/2 or F == I−1/2 (F ≥ 0), otherwise atom.ErrInvalidManifold.
//
// Returns a len(fieldGauss)×(2F+1) matrix.
// Complexity: O(len(fieldGauss)·F).
func Energies(fieldGauss []float64, lvl atom.Level, F float64) (*mat.Dense, error) {
	if len(fieldGauss) == 0 {
		return nil, ErrEmptyField
	}
	upper, err := checkManifold(lvl, F)
	if err != nil {
		return nil, err
	}

	var (
		nm     = int(math.Round(2*F)) + 1
		hdv    = constants.H * lvl.DeltaEHF              // zero-field splitting (J)
		offset = -hdv / (2 * (2*lvl.I + 1))              // common shift
		xScale = constants.MuB * (lvl.GJ - lvl.GI) / hdv // x per tesla
		out    = mat.NewDense(len(fieldGauss), nm, nil)
		row    = make([]float64, nm)
	)
	for i, g := range fieldGauss {
		b := g * constants.GaussToTesla
		x := xScale * b
		for k := 0; k < nm; k++ {
			m := -F + float64(k)
			e := offset + lvl.GI*constants.MuB*m*b
			switch {
			case !upper:
				e -= hdv / 2 * radical(m, x, lvl.I)
			case k == 0:
				e += hdv / 2 * (1 - x)
			case k == nm-1:
				e += hdv / 2 * (1 + x)
			default:
				e += hdv / 2 * radical(m, x, lvl.I)
			}
			row[k] = e
		}
		out.SetRow(i, row)
	}

	return out, nil
}

// Energy is Energies for a single field value.
func Energy(fieldGauss float64, lvl atom.Level, F float64) ([]float64, error) {
	m, err := Energies([]float64{fieldGauss}, lvl, F)
	if err != nil {
		return nil, err
	}

	return mat.Row(nil, 0, m), nil
}

// ManifoldEnergies returns the Breit-Rabi energies of both manifolds of a
// J=1/2 level, sorted ascending per field point. Its columns line up with
// those of Numerical for the same level.
func ManifoldEnergies(fieldGauss []float64, lvl atom.Level) (*mat.Dense, error) {
	lower, err := Energies(fieldGauss, lvl, lvl.I-0.5)
	if err != nil && !errors.Is(err, atom.ErrInvalidManifold) {
		return nil, err
	}
	upper, err := Energies(fieldGauss, lvl, lvl.I+0.5)
	if err != nil {
		return nil, err
	}

	var (
		n   = len(fieldGauss)
		dim = lvl.Multiplicity()
		out = mat.NewDense(n, dim, nil)
		row = make([]float64, 0, dim)
	)
	for i := 0; i < n; i++ {
		row = row[:0]
		if lower != nil {
			row = append(row, lower.RawRowView(i)...)
		}
		row = append(row, upper.RawRowView(i)...)
		sort.Float64s(row)
		out.SetRow(i, row)
	}

	return out, nil
}

// checkManifold validates the Breit-Rabi preconditions and reports whether
// F is the upper (I+1/2) manifold.
func checkManifold(lvl atom.Level, F float64) (bool, error) {
	if math.Abs(lvl.J-0.5) > manifoldEps {
		return false, fmt.Errorf("%s: Breit-Rabi needs J=1/2, got J=%g: %w", lvl.ID(), lvl.J, atom.ErrInvalidLevel)
	}
	switch {
	case math.Abs(F-(lvl.I+lvl.J)) < manifoldEps:
		return true, nil
	case F >= 0 && math.Abs(F-(lvl.I-lvl.J)) < manifoldEps:
		return false, nil
	}

	return false, fmt.Errorf("%s: F=%g is not I±J: %w", lvl.ID(), F, atom.ErrInvalidManifold)
}

// radical is √(1 + 4mx/(2I+1) + x²), clamped at zero against rounding.
func radical(m, x, I float64) float64 {
	return math.Sqrt(math.Max(0, 1+4*m*x/(2*I+1)+x*x))
}
