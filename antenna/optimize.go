// SPDX-License-Identifier: MIT

package antenna

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/spintools/evolution"
	"github.com/katalvlaran/spintools/network"
)

// Defaults applied by Optimize.
const (
	// DefaultZ0 is the reference line impedance in Ω.
	DefaultZ0 = 50.0

	// DefaultDepthFloorDB drops samples whose S11 lies below it.
	DefaultDepthFloorDB = -40.0
)

const (
	panicZ0Invalid    = "antenna: WithZ0: z0 must be finite and > 0"
	panicFloorInvalid = "antenna: WithDepthFloor: floor must not be NaN"
)

// Option configures Optimize.
type Option func(*options)

type options struct {
	z0      float64
	floorDB float64
	search  evolution.Config
	log     logr.Logger
}

func defaultOptions() options {
	return options{
		z0:      DefaultZ0,
		floorDB: DefaultDepthFloorDB,
		search:  evolution.DefaultConfig(),
		log:     logr.Discard(),
	}
}

// WithZ0 sets the reference line impedance. Panics unless z0 is finite and
// positive.
func WithZ0(z0 float64) Option {
	if math.IsNaN(z0) || math.IsInf(z0, 0) || z0 <= 0 {
		panic(panicZ0Invalid)
	}

	return func(o *options) { o.z0 = z0 }
}

// WithDepthFloor sets the depth floor in dB; −Inf keeps every sample.
// Panics on NaN.
func WithDepthFloor(db float64) Option {
	if math.IsNaN(db) {
		panic(panicFloorInvalid)
	}

	return func(o *options) { o.floorDB = db }
}

// WithSearch replaces the optimizer configuration. It is validated by
// Optimize.
func WithSearch(cfg evolution.Config) Option {
	return func(o *options) { o.search = cfg }
}

// WithLogger sets the progress logger. Each topology logs at level 0
// before its run and at V(1) after it.
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

// Optimize searches every topology in order and returns one Result per
// topology, in the same order. A search that ran out of iterations is
// reported through Result.Success, not as an error.
//
// Errors: ErrNoTopologies, ErrBadBand, ErrBadTopology, network errors for
// raw or z0, evolution.ErrBadBounds / ErrBadConfig, and errors from a
// BuildFunc.
func Optimize(raw *network.Network, topologies []Topology, band Band, opts ...Option) ([]Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if raw == nil {
		return nil, fmt.Errorf("antenna: nil raw network: %w", network.ErrBadNetwork)
	}
	if len(topologies) == 0 {
		return nil, ErrNoTopologies
	}
	if err := band.Validate(); err != nil {
		return nil, err
	}
	for _, t := range topologies {
		if t.Build == nil {
			return nil, fmt.Errorf("%q: nil build: %w", t.Name, ErrBadTopology)
		}
	}
	if err := o.search.Validate(); err != nil {
		return nil, err
	}

	line, err := network.NewLine(raw.Frequency, o.z0)
	if err != nil {
		return nil, fmt.Errorf("antenna: reference line: %w", err)
	}

	results := make([]Result, 0, len(topologies))
	for _, t := range topologies {
		o.log.Info("optimizing matching network", "topology", t.Name, "parameters", len(t.Bounds))

		res, err := evolution.Minimize(Objective(line, raw, band, o.floorDB, t.Build), t.Bounds, o.search)
		if err != nil {
			return nil, fmt.Errorf("antenna: %s: %w", t.Name, err)
		}

		o.log.V(1).Info("optimization finished",
			"topology", t.Name, "fun", res.Fun, "success", res.Success, "nit", res.Nit, "nfev", res.Nfev)
		results = append(results, Result{Topology: t.Name, Result: res})
	}

	return results, nil
}
