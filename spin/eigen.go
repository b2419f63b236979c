// SPDX-License-Identifier: MIT

package spin

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSymmetric is returned when the operator is not symmetric within
	// the relative tolerance symmetryTol.
	ErrNotSymmetric = errors.New("spin: matrix is not symmetric")

	// ErrEigenFailed is returned when the eigen-solver does not converge.
	ErrEigenFailed = errors.New("spin: eigen decomposition failed")
)

const (
	// symmetryTol bounds |a_ij − a_ji| relative to max|a|.
	symmetryTol = 1e-10

	// DefaultJacobiTol is the relative off-diagonal threshold of WithJacobi.
	DefaultJacobiTol = 1e-14

	// DefaultJacobiMaxIter caps the number of Jacobi rotations.
	DefaultJacobiMaxIter = 10000
)

const (
	panicJacobiTol     = "spin: WithJacobi: tol must be finite and > 0"
	panicJacobiMaxIter = "spin: WithJacobi: maxIter must be > 0"
)

type solver int

const (
	solverEigenSym solver = iota
	solverJacobi
)

// Option configures Eigenvalues.
type Option func(*options)

type options struct {
	solver  solver
	tol     float64
	maxIter int
}

func gatherOptions(opts []Option) options {
	o := options{solver: solverEigenSym, tol: DefaultJacobiTol, maxIter: DefaultJacobiMaxIter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithJacobi selects the Jacobi rotation solver. tol is relative to the
// largest absolute matrix element; maxIter caps the number of rotations.
// Panics on nonsensical values.
func WithJacobi(tol float64, maxIter int) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicJacobiTol)
	}
	if maxIter <= 0 {
		panic(panicJacobiMaxIter)
	}

	return func(o *options) {
		o.solver = solverJacobi
		o.tol = tol
		o.maxIter = maxIter
	}
}

// Eigenvalues returns the eigenvalues of the real symmetric matrix h in
// ascending order.
//
// Stage 1: validate squareness and symmetry (relative tolerance).
// Stage 2: diagonalize with mat.EigenSym, or Jacobi rotations under WithJacobi.
//
// Errors: ErrNotSymmetric, ErrEigenFailed.
// Complexity: O(n³).
func Eigenvalues(h mat.Matrix, opts ...Option) ([]float64, error) {
	sym, err := toSym(h)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	if o.solver == solverJacobi {
		return jacobi(sym, o.tol, o.maxIter)
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, ErrEigenFailed
	}

	return es.Values(nil), nil
}

// toSym copies h into a SymDense after checking symmetry.
func toSym(h mat.Matrix) (*mat.SymDense, error) {
	r, c := h.Dims()
	if r != c {
		return nil, fmt.Errorf("%dx%d: %w", r, c, ErrNotSymmetric)
	}
	scale := mat.Norm(h, math.Inf(1))
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			aij, aji := h.At(i, j), h.At(j, i)
			if math.Abs(aij-aji) > symmetryTol*scale {
				return nil, fmt.Errorf("(%d,%d): %w", i, j, ErrNotSymmetric)
			}
			sym.SetSym(i, j, (aij+aji)/2)
		}
	}

	return sym, nil
}

// jacobi diagonalizes a by repeated rotations that zero the largest
// off-diagonal element. The rotation bookkeeping only needs the eigenvalues,
// so no eigenvector accumulator is kept.
func jacobi(a *mat.SymDense, tol float64, maxIter int) ([]float64, error) {
	var (
		n      = a.SymmetricDim()
		w      = mat.DenseCopyOf(a)
		scale  = mat.Norm(a, math.Inf(1))
		iter   int
		p, q   int
		maxOff float64
	)
	if scale == 0 {
		return make([]float64, n), nil
	}

	for iter = 0; iter < maxIter; iter++ {
		if p, q, maxOff = largestOff(w); maxOff <= tol*scale {
			break
		}

		app, aqq, apq := w.At(p, p), w.At(q, q), w.At(p, q)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := w.At(i, p), w.At(i, q)
			w.Set(i, p, c*aip-s*aiq)
			w.Set(p, i, c*aip-s*aiq)
			w.Set(i, q, s*aip+c*aiq)
			w.Set(q, i, s*aip+c*aiq)
		}
		w.Set(p, p, app-t*apq)
		w.Set(q, q, aqq+t*apq)
		w.Set(p, q, 0)
		w.Set(q, p, 0)
	}
	// the last permitted rotation may itself have converged
	if iter == maxIter {
		if _, _, maxOff = largestOff(w); maxOff > tol*scale {
			return nil, ErrEigenFailed
		}
	}

	vals := make([]float64, n)
	for i := range vals {
		vals[i] = w.At(i, i)
	}
	sort.Float64s(vals)

	return vals, nil
}

// largestOff returns the position and magnitude of the largest
// off-diagonal |w[p][q]|, p < q.
func largestOff(w *mat.Dense) (p, q int, maxOff float64) {
	n, _ := w.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := math.Abs(w.At(i, j)); off > maxOff {
				maxOff = off
				p, q = i, j
			}
		}
	}

	return p, q, maxOff
}
