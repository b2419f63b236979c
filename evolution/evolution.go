// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// minPopulation is the smallest population regardless of PopSize·N.
const minPopulation = 5

// solver carries the state of one Minimize run.
type solver struct {
	f      Func
	bounds []Bound
	cfg    Config
	rng    *rand.Rand

	pop      [][]float64 // members in unit-cube coordinates; pop[0] is the best
	energies []float64
	nfev     int
	scratch  []float64 // parameter-space buffer handed to f
}

// Minimize searches bounds for the minimum of f.
//
// A non-converged search is not an error: the best point is returned with
// Success=false and Message=MsgMaxIter.
//
// Errors: ErrBadBounds, ErrBadConfig, or the first error returned by f
// (wrapped).
// Complexity: O(MaxIter·PopSize·N·cost(f)) plus the polish budget.
func Minimize(f Func, bounds []Bound, cfg Config) (Result, error) {
	if err := checkBounds(bounds); err != nil {
		return Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	s := &solver{
		f:       f,
		bounds:  bounds,
		cfg:     cfg,
		rng:     rngFromSeed(cfg.Seed),
		scratch: make([]float64, len(bounds)),
	}

	// Stage 1
	s.initLatinHypercube()
	if err := s.evaluatePopulation(); err != nil {
		return Result{}, err
	}

	// Stage 2 + 3
	res := Result{Message: MsgMaxIter}
	for res.Nit < cfg.MaxIter {
		res.Nit++
		if err := s.generation(); err != nil {
			return Result{}, err
		}
		if s.converged() {
			res.Success = true
			res.Message = MsgConverged
			break
		}
	}

	res.X = s.scale(s.pop[0], make([]float64, len(bounds)))
	res.Fun = s.energies[0]

	// Stage 4
	if cfg.Polish {
		x, fun, err := s.polish(s.pop[0])
		if err != nil {
			return Result{}, err
		}
		if fun < res.Fun {
			res.X, res.Fun = x, fun
		}
	}
	res.Nfev = s.nfev

	return res, nil
}

// initLatinHypercube places one member in each of n equal strata per
// parameter, with strata paired across parameters by random permutations.
func (s *solver) initLatinHypercube() {
	var (
		dim   = len(s.bounds)
		n     = max(minPopulation, s.cfg.PopSize*dim)
		seg   = 1 / float64(n)
		cells = make([][]float64, n)
	)
	for i := range cells {
		cells[i] = make([]float64, dim)
		for j := range cells[i] {
			cells[i][j] = seg*s.rng.Float64() + seg*float64(i)
		}
	}

	s.pop = make([][]float64, n)
	for i := range s.pop {
		s.pop[i] = make([]float64, dim)
	}
	for j := 0; j < dim; j++ {
		for i, src := range permutation(n, s.rng) {
			s.pop[i][j] = cells[src][j]
		}
	}
}

func (s *solver) evaluatePopulation() error {
	s.energies = make([]float64, len(s.pop))
	for i, u := range s.pop {
		e, err := s.evaluate(u)
		if err != nil {
			return err
		}
		s.energies[i] = e
	}
	s.promoteBest()

	return nil
}

// generation runs one best1bin sweep with immediate replacement.
func (s *solver) generation() error {
	var (
		dim   = len(s.bounds)
		scale = s.cfg.MutationMin + s.rng.Float64()*(s.cfg.MutationMax-s.cfg.MutationMin)
		idx   = make([]int, 0, len(s.pop)-1)
		trial = make([]float64, dim)
	)
	for c := range s.pop {
		idx = idx[:0]
		for i := range s.pop {
			if i != c {
				idx = append(idx, i)
			}
		}
		shuffleInts(idx, s.rng)
		r0, r1 := s.pop[idx[0]], s.pop[idx[1]]
		best := s.pop[0]

		copy(trial, s.pop[c])
		fill := s.rng.Intn(dim)
		for j := 0; j < dim; j++ {
			if j == fill || s.rng.Float64() < s.cfg.Recombination {
				trial[j] = best[j] + scale*(r0[j]-r1[j])
			}
		}
		for j, v := range trial {
			if v < 0 || v > 1 {
				trial[j] = s.rng.Float64()
			}
		}

		e, err := s.evaluate(trial)
		if err != nil {
			return err
		}
		if e <= s.energies[c] {
			copy(s.pop[c], trial)
			s.energies[c] = e
			if e < s.energies[0] {
				s.promoteBest()
			}
		}
	}

	return nil
}

// converged reports std(E) ≤ Atol + Tol·|mean(E)|.
func (s *solver) converged() bool {
	for _, e := range s.energies {
		if math.IsInf(e, 0) || math.IsNaN(e) {
			return false
		}
	}
	mean, variance := stat.PopMeanVariance(s.energies, nil)

	return math.Sqrt(variance) <= s.cfg.Atol+s.cfg.Tol*math.Abs(mean)
}

// promoteBest moves the lowest-energy member to index 0.
func (s *solver) promoteBest() {
	b := floats.MinIdx(s.energies)
	s.pop[0], s.pop[b] = s.pop[b], s.pop[0]
	s.energies[0], s.energies[b] = s.energies[b], s.energies[0]
}

func (s *solver) evaluate(u []float64) (float64, error) {
	s.nfev++
	e, err := s.f(s.scale(u, s.scratch))
	if err != nil {
		return 0, fmt.Errorf("evolution: objective at %v: %w", s.scratch, err)
	}
	if math.IsNaN(e) {
		e = math.Inf(1)
	}

	return e, nil
}

// scale maps unit-cube coordinates u onto the bounds, writing into dst.
func (s *solver) scale(u, dst []float64) []float64 {
	for j, b := range s.bounds {
		dst[j] = b.Low + u[j]*(b.High-b.Low)
	}

	return dst
}

func checkBounds(bounds []Bound) error {
	if len(bounds) == 0 {
		return fmt.Errorf("no parameters: %w", ErrBadBounds)
	}
	for i, b := range bounds {
		if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) || b.Low > b.High {
			return fmt.Errorf("bound %d [%g, %g]: %w", i, b.Low, b.High, ErrBadBounds)
		}
	}

	return nil
}
