// SPDX-License-Identifier: MIT

package antenna

import (
	"fmt"

	"github.com/katalvlaran/spintools/evolution"
	"github.com/katalvlaran/spintools/network"
	"gonum.org/v1/gonum/integrate"
)

// Objective returns the figure of merit of build for the optimizer. The
// closure holds no mutable state besides per-call buffers; fewer than two
// kept samples give 0.
func Objective(line *network.Media, raw *network.Network, band Band, floorDB float64, build BuildFunc) evolution.Func {
	return func(x []float64) (float64, error) {
		// Stage 1
		ntw, err := build(line, raw, x)
		if err != nil {
			return 0, err
		}

		// Stage 2 + 3
		var (
			db   = ntw.S11DB()
			fs   = make([]float64, 0, len(db))
			vals = make([]float64, 0, len(db))
		)
		for i, f := range ntw.Frequency {
			if band.Contains(f) && db[i] >= floorDB {
				fs = append(fs, f)
				vals = append(vals, db[i])
			}
		}
		if len(fs) < 2 {
			return 0, nil
		}

		// Stage 4
		return integrate.Trapezoidal(fs, vals) * objectiveScale, nil
	}
}

// element builds one two-port from a component value.
type element func(line *network.Media, value float64) (*network.Network, error)

// ladder is a Topology cascading elems, in source-to-antenna order, in
// front of the raw network. x[i] is the value of elems[i].
func ladder(name string, bounds []evolution.Bound, elems ...element) Topology {
	return Topology{
		Name:   name,
		Bounds: bounds,
		Build: func(line *network.Media, raw *network.Network, x []float64) (*network.Network, error) {
			if len(x) != len(elems) {
				return nil, fmt.Errorf("%s: %d values for %d components: %w", name, len(x), len(elems), ErrBadTopology)
			}
			chain := make([]*network.Network, 0, len(elems)+1)
			for i, e := range elems {
				n, err := e(line, x[i])
				if err != nil {
					return nil, fmt.Errorf("%s: component %d: %w", name, i, err)
				}
				chain = append(chain, n)
			}

			return network.CascadeAll(append(chain, raw)...)
		},
	}
}
