// SPDX-License-Identifier: MIT

package atom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spintools/constants"
)

// quantumEps is the tolerance used when comparing (half-)integer quantum numbers.
const quantumEps = 1e-9

// LandeGJ returns the Landé g-factor of a level with angular momenta L, S, J:
//
//	g_J = g_L·[J(J+1) − S(S+1) + L(L+1)] / 2J(J+1)
//	    + g_e·[J(J+1) + S(S+1) − L(L+1)] / 2J(J+1)
//
// J must be positive.
func LandeGJ(L, S, J float64) float64 {
	var (
		jj = J * (J + 1)
		ss = S * (S + 1)
		ll = L * (L + 1)
	)

	return constants.GL*(jj-ss+ll)/(2*jj) + constants.GE*(jj+ss-ll)/(2*jj)
}

// NewLevel validates spec against iso and derives g_J and Δν_hf.
//
// Checks:
//   - 2I and 2J are non-negative integers, J > 0, L a non-negative integer;
//   - |L−S| ≤ J ≤ L+S (triangle rule).
//
// Returns ErrInvalidLevel (wrapped with the offending values) on failure.
func NewLevel(iso Isotope, spec LevelSpec) (Level, error) {
	switch {
	case !isHalfInteger(iso.I) || iso.I < 0:
		return Level{}, fmt.Errorf("%s %s: I=%g: %w", iso.Name, spec.Name, iso.I, ErrInvalidLevel)
	case !isHalfInteger(iso.S) || iso.S <= 0:
		return Level{}, fmt.Errorf("%s %s: S=%g: %w", iso.Name, spec.Name, iso.S, ErrInvalidLevel)
	case !isInteger(spec.L) || spec.L < 0:
		return Level{}, fmt.Errorf("%s %s: L=%g: %w", iso.Name, spec.Name, spec.L, ErrInvalidLevel)
	case !isHalfInteger(spec.J) || spec.J <= 0:
		return Level{}, fmt.Errorf("%s %s: J=%g: %w", iso.Name, spec.Name, spec.J, ErrInvalidLevel)
	case spec.J < math.Abs(spec.L-iso.S)-quantumEps || spec.J > spec.L+iso.S+quantumEps:
		return Level{}, fmt.Errorf("%s %s: J=%g outside |L-S|..L+S: %w", iso.Name, spec.Name, spec.J, ErrInvalidLevel)
	}

	return Level{
		Isotope:  iso,
		Name:     spec.Name,
		L:        spec.L,
		J:        spec.J,
		GJ:       LandeGJ(spec.L, iso.S, spec.J),
		AHF:      spec.AHF,
		BHF:      spec.BHF,
		DeltaEHF: spec.AHF * (iso.I + 0.5),
	}, nil
}

// GF returns the Landé g_F of the hyperfine manifold F:
//
//	g_F = g_J·[F(F+1) − I(I+1) + J(J+1)] / 2F(F+1)
//	    + g_I·[F(F+1) + I(I+1) − J(J+1)] / 2F(F+1)
//
// F=0 has no Zeeman shift; GF returns 0 for it.
func (l Level) GF(F float64) float64 {
	if F <= 0 {
		return 0
	}
	var (
		ff = F * (F + 1)
		ii = l.I * (l.I + 1)
		jj = l.J * (l.J + 1)
	)

	return l.GJ*(ff-ii+jj)/(2*ff) + l.GI*(ff+ii-jj)/(2*ff)
}

// Manifolds returns the allowed total angular momenta F = |I−J|, …, I+J
// in ascending order.
func (l Level) Manifolds() []float64 {
	lo, hi := math.Abs(l.I-l.J), l.I+l.J
	out := make([]float64, 0, int(math.Round(hi-lo))+1)
	for f := lo; f <= hi+quantumEps; f++ {
		out = append(out, f)
	}

	return out
}

// ValidateF reports ErrInvalidManifold unless F is one of l.Manifolds().
func (l Level) ValidateF(F float64) error {
	for _, f := range l.Manifolds() {
		if math.Abs(f-F) < quantumEps {
			return nil
		}
	}

	return fmt.Errorf("%s: F=%g not in |I-J|..I+J: %w", l.ID(), F, ErrInvalidManifold)
}

// Multiplicity returns the dimension (2I+1)(2J+1) of the product space.
func (l Level) Multiplicity() int {
	return int(math.Round((2*l.I + 1) * (2*l.J + 1)))
}

func isInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) < quantumEps
}

func isHalfInteger(x float64) bool {
	return isInteger(2 * x)
}
