// SPDX-License-Identifier: MIT

package evolution

import "errors"

var (
	// ErrBadBounds is returned for an empty bound list or a bound that is
	// not finite or has Low > High.
	ErrBadBounds = errors.New("evolution: invalid bounds")

	// ErrBadConfig is returned by Config.Validate.
	ErrBadConfig = errors.New("evolution: invalid config")
)

// Result messages.
const (
	MsgConverged = "Optimization terminated successfully."
	MsgMaxIter   = "Maximum number of iterations has been exceeded."
)

// Bound is the closed search interval of one parameter.
type Bound struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// Func is the objective. An error aborts the run and is returned by
// Minimize.
type Func func(x []float64) (float64, error)

// Result reports the best point found.
//
// Fields:
//   - X      : best parameter vector, inside the bounds.
//   - Fun    : objective value at X.
//   - Success: true when the population converged before MaxIter.
//   - Message: MsgConverged or MsgMaxIter.
//   - Nit    : generations run.
//   - Nfev   : objective evaluations, polish included.
type Result struct {
	X       []float64 `yaml:"x" json:"x"`
	Fun     float64   `yaml:"fun" json:"fun"`
	Success bool      `yaml:"success" json:"success"`
	Message string    `yaml:"message" json:"message"`
	Nit     int       `yaml:"nit" json:"nit"`
	Nfev    int       `yaml:"nfev" json:"nfev"`
}
