// SPDX-License-Identifier: MIT

package antenna

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spintools/evolution"
	"github.com/katalvlaran/spintools/network"
)

var (
	// ErrNoTopologies is returned by Optimize for an empty topology list.
	ErrNoTopologies = errors.New("antenna: no topologies")

	// ErrBadBand is returned for a band that is not finite or has
	// Low ≥ High.
	ErrBadBand = errors.New("antenna: invalid band")

	// ErrBadTopology is returned for a topology without a BuildFunc or for a
	// component vector of the wrong length.
	ErrBadTopology = errors.New("antenna: invalid topology")
)

// Objective scale applied to the frequency integral of S11 in dB.
const objectiveScale = 1e-6

// Band is the open frequency interval (Low, High) in Hz.
type Band struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// Contains reports Low < f < High.
func (b Band) Contains(f float64) bool { return f > b.Low && f < b.High }

// Validate reports ErrBadBand unless Low < High and both are finite.
func (b Band) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) || b.Low >= b.High {
		return fmt.Errorf("band (%g, %g): %w", b.Low, b.High, ErrBadBand)
	}

	return nil
}

// BuildFunc maps a component vector onto the matched network. line is the
// reference media on raw's frequency axis.
type BuildFunc func(line *network.Media, raw *network.Network, x []float64) (*network.Network, error)

// Topology is one candidate matching network: a name, one search interval
// per component value and the network builder.
type Topology struct {
	Name   string
	Bounds []evolution.Bound
	Build  BuildFunc
}

// Result is the search outcome of one topology.
type Result struct {
	Topology         string `yaml:"topology" json:"topology"`
	evolution.Result `yaml:",inline"`
}
