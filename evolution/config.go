// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Named defaults. They reproduce the budget the antenna search was tuned
// with.
const (
	// DefaultMaxIter caps the number of generations.
	DefaultMaxIter = 250

	// DefaultPopSize is the population multiplier; the population holds
	// max(5, PopSize·N) members for N parameters.
	DefaultPopSize = 30

	// DefaultTol is the relative convergence tolerance on the population
	// energies.
	DefaultTol = 1e-6

	// DefaultAtol is the absolute convergence tolerance.
	DefaultAtol = 1e-6

	// DefaultSeed seeds the random stream.
	DefaultSeed int64 = 420

	// DefaultMutationMin and DefaultMutationMax bound the per-generation
	// dither of the differential weight.
	DefaultMutationMin = 0.5
	DefaultMutationMax = 1.0

	// DefaultRecombination is the crossover probability.
	DefaultRecombination = 0.7

	// DefaultPolishEvaluations caps the objective calls of the polish.
	DefaultPolishEvaluations = 2000
)

// Config controls Minimize. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	MaxIter           int     `yaml:"maxIter" json:"maxIter"`
	PopSize           int     `yaml:"popSize" json:"popSize"`
	Tol               float64 `yaml:"tol" json:"tol"`
	Atol              float64 `yaml:"atol" json:"atol"`
	Seed              int64   `yaml:"seed" json:"seed"`
	MutationMin       float64 `yaml:"mutationMin" json:"mutationMin"`
	MutationMax       float64 `yaml:"mutationMax" json:"mutationMax"`
	Recombination     float64 `yaml:"recombination" json:"recombination"`
	Polish            bool    `yaml:"polish" json:"polish"`
	PolishEvaluations int     `yaml:"polishEvaluations" json:"polishEvaluations"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxIter:           DefaultMaxIter,
		PopSize:           DefaultPopSize,
		Tol:               DefaultTol,
		Atol:              DefaultAtol,
		Seed:              DefaultSeed,
		MutationMin:       DefaultMutationMin,
		MutationMax:       DefaultMutationMax,
		Recombination:     DefaultRecombination,
		Polish:            true,
		PolishEvaluations: DefaultPolishEvaluations,
	}
}

// Validate reports the first inconsistent field as ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.MaxIter < 1:
		return fmt.Errorf("maxIter=%d: %w", c.MaxIter, ErrBadConfig)
	case c.PopSize < 1:
		return fmt.Errorf("popSize=%d: %w", c.PopSize, ErrBadConfig)
	case !finiteNonNeg(c.Tol) || !finiteNonNeg(c.Atol):
		return fmt.Errorf("tol=%g atol=%g: %w", c.Tol, c.Atol, ErrBadConfig)
	case !finiteNonNeg(c.MutationMin) || c.MutationMax > 2 || c.MutationMin > c.MutationMax:
		return fmt.Errorf("mutation [%g, %g] outside 0 ≤ min ≤ max ≤ 2: %w", c.MutationMin, c.MutationMax, ErrBadConfig)
	case !(c.Recombination >= 0 && c.Recombination <= 1):
		return fmt.Errorf("recombination=%g: %w", c.Recombination, ErrBadConfig)
	case c.Polish && c.PolishEvaluations < 1:
		return fmt.Errorf("polishEvaluations=%d: %w", c.PolishEvaluations, ErrBadConfig)
	}

	return nil
}

// LoadConfig decodes a YAML document over DefaultConfig, so absent keys
// keep their defaults, and validates the result. Unknown keys are errors.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func finiteNonNeg(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
