// SPDX-License-Identifier: MIT

package breitrabi_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/spintools/atom"
	"github.com/katalvlaran/spintools/breitrabi"
	"github.com/katalvlaran/spintools/constants"
	"github.com/katalvlaran/spintools/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var groundLevels = []atom.Level{atom.Rb87Ground(), atom.K40Ground()}

// assertRowsClose compares two trace matrices row by row with a tolerance
// relative to the largest |E| of the reference row.
func assertRowsClose(t *testing.T, want, got *mat.Dense, rel float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr)
	require.Equal(t, wc, gc)
	for i := 0; i < wr; i++ {
		w := want.RawRowView(i)
		g := got.RawRowView(i)
		scale := math.Max(math.Abs(floats.Max(w)), math.Abs(floats.Min(w)))
		for k := range w {
			assert.InDelta(t, w[k], g[k], rel*scale, "row %d col %d", i, k)
		}
	}
}

func TestEnergies_ZeroFieldCollapse(t *testing.T) {
	for _, lvl := range groundLevels {
		hdv := constants.H * lvl.DeltaEHF
		offset := -hdv / (2 * (2*lvl.I + 1))

		up, err := breitrabi.Energy(0, lvl, lvl.I+0.5)
		require.NoError(t, err)
		lo, err := breitrabi.Energy(0, lvl, lvl.I-0.5)
		require.NoError(t, err)

		require.Len(t, up, int(2*lvl.I+2))
		require.Len(t, lo, int(2*lvl.I))
		for _, e := range up {
			assert.InDelta(t, offset+hdv/2, e, 1e-12*math.Abs(hdv), lvl.ID())
		}
		for _, e := range lo {
			assert.InDelta(t, offset-hdv/2, e, 1e-12*math.Abs(hdv), lvl.ID())
		}
		// the two manifolds are separated by the zero-field splitting
		assert.InDelta(t, hdv, up[0]-lo[0], 1e-12*math.Abs(hdv), lvl.ID())
	}
}

// TestEnergies_StretchedStateContinuity checks that, where 1±x > 0, the
// linear stretched-state form equals the general radical.
func TestEnergies_StretchedStateContinuity(t *testing.T) {
	lvl := atom.Rb87Ground()
	F := lvl.I + 0.5
	hdv := constants.H * lvl.DeltaEHF
	for _, g := range []float64{0, 1, 50, 300} {
		e, err := breitrabi.Energy(g, lvl, F)
		require.NoError(t, err)

		b := g * constants.GaussToTesla
		x := constants.MuB * (lvl.GJ - lvl.GI) * b / hdv
		for _, m := range []float64{-F, F} {
			want := -hdv/(2*(2*lvl.I+1)) + lvl.GI*constants.MuB*m*b +
				hdv/2*math.Sqrt(1+4*m*x/(2*lvl.I+1)+x*x)
			k := int(m + F)
			assert.InDelta(t, want, e[k], 1e-9*math.Abs(hdv), "B=%g m=%g", g, m)
		}
	}
}

func TestEnergies_MatchNumerical(t *testing.T) {
	fields := []float64{0, 0.5, 10, 100, 500, 1000, 3000, 10000}
	for _, lvl := range groundLevels {
		closed, err := breitrabi.ManifoldEnergies(fields, lvl)
		require.NoError(t, err)

		num, err := breitrabi.Numerical(fields, lvl)
		require.NoError(t, err)
		assertRowsClose(t, closed, num, 1e-6)

		jac, err := breitrabi.Numerical(fields, lvl, spin.WithJacobi(spin.DefaultJacobiTol, spin.DefaultJacobiMaxIter))
		require.NoError(t, err)
		assertRowsClose(t, closed, jac, 1e-6)
	}
}

func TestEnergies_Shape(t *testing.T) {
	fields := []float64{0, 1, 2}
	e, err := breitrabi.Energies(fields, atom.K40Ground(), 4.5)
	require.NoError(t, err)
	r, c := e.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 10, c)
}

func TestEnergies_Errors(t *testing.T) {
	_, err := breitrabi.Energies([]float64{1}, atom.K40Excited(), 4.5)
	assert.ErrorIs(t, err, atom.ErrInvalidLevel)

	_, err = breitrabi.Energies([]float64{1}, atom.Rb87Ground(), 3)
	assert.ErrorIs(t, err, atom.ErrInvalidManifold)

	_, err = breitrabi.Energies([]float64{1}, atom.Rb87Ground(), 1.5)
	assert.ErrorIs(t, err, atom.ErrInvalidManifold)

	_, err = breitrabi.Energies(nil, atom.Rb87Ground(), 2)
	assert.ErrorIs(t, err, breitrabi.ErrEmptyField)

	_, err = breitrabi.Numerical(nil, atom.Rb87Ground())
	assert.ErrorIs(t, err, breitrabi.ErrEmptyField)

	_, err = breitrabi.Numerical([]float64{1}, atom.Level{})
	assert.ErrorIs(t, err, atom.ErrInvalidLevel)

	_, err = breitrabi.ManifoldEnergies([]float64{1}, atom.Rb87Excited())
	assert.ErrorIs(t, err, atom.ErrInvalidLevel)
}

// TestNumerical_ZeroFieldQuadrupole checks the J=3/2 zero-field structure
// against E_F = A·K/2 + B·[3/2·K(K+1) − 2I(I+1)J(J+1)] / [4I(2I−1)J(2J−1)],
// K = F(F+1) − I(I+1) − J(J+1), each with multiplicity 2F+1.
func TestNumerical_ZeroFieldQuadrupole(t *testing.T) {
	for _, lvl := range []atom.Level{atom.K40Excited(), atom.Rb87Excited()} {
		var want []float64
		ii := lvl.I * (lvl.I + 1)
		jj := lvl.J * (lvl.J + 1)
		for _, F := range lvl.Manifolds() {
			K := F*(F+1) - ii - jj
			eHz := lvl.AHF*K/2 +
				lvl.BHF*(1.5*K*(K+1)-2*ii*jj)/(4*lvl.I*(2*lvl.I-1)*lvl.J*(2*lvl.J-1))
			for m := 0; m < int(2*F+1); m++ {
				want = append(want, eHz*constants.H)
			}
		}
		sort.Float64s(want)

		got, err := breitrabi.Numerical([]float64{0}, lvl)
		require.NoError(t, err)
		row := got.RawRowView(0)
		require.Len(t, row, len(want), lvl.ID())
		scale := math.Abs(floats.Max(want)) + math.Abs(floats.Min(want))
		for k := range want {
			assert.InDelta(t, want[k], row[k], 1e-9*scale, "%s k=%d", lvl.ID(), k)
		}
	}
}

func BenchmarkNumerical_K40Ground(b *testing.B) {
	fields := make([]float64, 200)
	floats.Span(fields, 0, 1000)
	lvl := atom.K40Ground()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := breitrabi.Numerical(fields, lvl); err != nil {
			b.Fatalf("Numerical: %v", err)
		}
	}
}
