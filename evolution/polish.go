// SPDX-License-Identifier: MIT

package evolution

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// polish runs Nelder-Mead from u0 in unit-cube coordinates, clamping every
// probe into [0, 1]. It returns the best point in parameter space.
//
// Errors: only errors returned by the objective; optimizer failures leave
// the start point as the answer.
func (s *solver) polish(u0 []float64) ([]float64, float64, error) {
	var (
		dim     = len(s.bounds)
		clamped = make([]float64, dim)
		fErr    error
	)
	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			if fErr != nil {
				return math.Inf(1)
			}
			for j, v := range u {
				clamped[j] = math.Min(1, math.Max(0, v))
			}
			e, err := s.evaluate(clamped)
			if err != nil {
				fErr = err
				return math.Inf(1)
			}
			return e
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: s.cfg.PolishEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   s.cfg.Atol * 1e-3,
			Relative:   s.cfg.Tol * 1e-3,
			Iterations: 20 * dim,
		},
	}

	start := append([]float64(nil), u0...)
	// a limit or failure status still carries the best location seen
	res, _ := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
	if fErr != nil {
		return nil, 0, fErr
	}
	if res == nil || math.IsNaN(res.F) {
		return nil, math.Inf(1), nil
	}

	for j, v := range res.X {
		clamped[j] = math.Min(1, math.Max(0, v))
	}

	return s.scale(clamped, make([]float64, dim)), res.F, nil
}
