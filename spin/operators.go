// SPDX-License-Identifier: MIT

package spin

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidSpin is returned when 2j is not a non-negative integer.
var ErrInvalidSpin = errors.New("spin: j must be a non-negative half-integer")

// Dim returns 2j+1, or ErrInvalidSpin.
func Dim(j float64) (int, error) {
	twoJ := 2 * j
	if j < 0 || math.Abs(twoJ-math.Round(twoJ)) > 1e-9 {
		return 0, fmt.Errorf("j=%g: %w", j, ErrInvalidSpin)
	}

	return int(math.Round(twoJ)) + 1, nil
}

// Jz returns the diagonal operator diag(j, j−1, …, −j).
func Jz(j float64) (*mat.Dense, error) {
	n, err := Dim(j)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		out.Set(k, k, j-float64(k))
	}

	return out, nil
}

// Jx returns (J₊ + J₋)/2.
func Jx(j float64) (*mat.Dense, error) {
	n, err := Dim(j)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, n, nil)
	for k := 1; k < n; k++ {
		c := ladder(j, j-float64(k)) / 2
		out.Set(k-1, k, c)
		out.Set(k, k-1, c)
	}

	return out, nil
}

// JyIm returns the real factor of J_y = (J₊ − J₋)/2i, i.e. J_y = i·JyIm.
func JyIm(j float64) (*mat.Dense, error) {
	n, err := Dim(j)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, n, nil)
	for k := 1; k < n; k++ {
		c := ladder(j, j-float64(k)) / 2
		out.Set(k-1, k, -c)
		out.Set(k, k-1, c)
	}

	return out, nil
}

// Identity returns the n×n identity.
func Identity(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		out.Set(k, k, 1)
	}

	return out
}

// Kron returns the Kronecker (tensor) product a⊗b.
func Kron(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Kronecker(a, b)

	return &out
}

// ladder is ⟨m+1|J₊|m⟩ = √(j(j+1) − m(m+1)).
func ladder(j, m float64) float64 {
	return math.Sqrt(j*(j+1) - m*(m+1))
}
