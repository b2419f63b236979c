// SPDX-License-Identifier: MIT

package passage

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadSweep is returned for invalid sweep parameters.
var ErrBadSweep = errors.New("passage: invalid sweep parameters")

// Defaults used by DefaultFrequencySweepOptions and DefaultFieldSweepOptions.
const (
	// DefaultPoints is the number of sweep samples.
	DefaultPoints = 401

	// DefaultFieldGauss is the static field of a frequency sweep.
	DefaultFieldGauss = 10.0

	// DefaultSpanHz is the full RF frequency span of a frequency sweep.
	DefaultSpanHz = 200e3

	// DefaultFrequencyHz is the RF frequency of a field sweep.
	DefaultFrequencyHz = 7e6

	// DefaultSpanGauss is the full field span of a field sweep.
	DefaultSpanGauss = 0.5

	// DefaultRFGauss is the RF amplitude.
	DefaultRFGauss = 0.01
)

// FrequencySweepOptions configures FrequencySweep.
//
// Fields:
//   - Points    : number of samples, ≥ 2.
//   - SpanHz    : full width of the RF sweep, centred on the Larmor frequency.
//   - FieldGauss: static field B.
//   - RFGauss   : RF amplitude B_rf, ≥ 0.
type FrequencySweepOptions struct {
	Points     int
	SpanHz     float64
	FieldGauss float64
	RFGauss    float64
}

// DefaultFrequencySweepOptions returns the documented defaults.
func DefaultFrequencySweepOptions() FrequencySweepOptions {
	return FrequencySweepOptions{
		Points:     DefaultPoints,
		SpanHz:     DefaultSpanHz,
		FieldGauss: DefaultFieldGauss,
		RFGauss:    DefaultRFGauss,
	}
}

// FieldSweepOptions configures FieldSweep.
//
// Fields:
//   - Points     : number of samples, ≥ 2.
//   - SpanGauss  : full width of the field sweep, centred on resonance.
//   - FrequencyHz: fixed RF frequency f.
//   - RFGauss    : RF amplitude B_rf, ≥ 0.
type FieldSweepOptions struct {
	Points      int
	SpanGauss   float64
	FrequencyHz float64
	RFGauss     float64
}

// DefaultFieldSweepOptions returns the documented defaults.
func DefaultFieldSweepOptions() FieldSweepOptions {
	return FieldSweepOptions{
		Points:      DefaultPoints,
		SpanGauss:   DefaultSpanGauss,
		FrequencyHz: DefaultFrequencyHz,
		RFGauss:     DefaultRFGauss,
	}
}

// Sweep is the result of a sweep.
type Sweep struct {
	// Axis holds the independent variable: absolute RF frequency (Hz) for a
	// frequency sweep, static field (gauss) for a field sweep.
	Axis []float64

	// Eigenvalues is len(Axis)×(2F+1), ascending per row, in joules.
	Eigenvalues *mat.Dense
}
