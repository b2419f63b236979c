// SPDX-License-Identifier: MIT

package antenna

import (
	"github.com/katalvlaran/spintools/evolution"
	"github.com/katalvlaran/spintools/network"
)

// Default component ranges used by DefaultTopologies.
var (
	DefaultCapacitance = evolution.Bound{Low: 1e-12, High: 1e-9} // F
	DefaultInductance  = evolution.Bound{Low: 1e-9, High: 10e-6} // H
)

var (
	seriesC = (*network.Media).Capacitor
	shuntC  = (*network.Media).ShuntCapacitor
	seriesL = (*network.Media).Inductor
	shuntL  = (*network.Media).ShuntInductor
)

// SeriesC is one series capacitor.
func SeriesC(c evolution.Bound) Topology {
	return ladder("series_c", []evolution.Bound{c}, seriesC)
}

// ShuntC is one capacitor to ground across the antenna port.
func ShuntC(c evolution.Bound) Topology {
	return ladder("shunt_c", []evolution.Bound{c}, shuntC)
}

// SeriesCShuntC is a series capacitor followed by a shunt capacitor at the
// antenna. x = [C_series, C_shunt].
func SeriesCShuntC(series, shunt evolution.Bound) Topology {
	return ladder("series_c_shunt_c", []evolution.Bound{series, shunt}, seriesC, shuntC)
}

// ShuntCSeriesC is a shunt capacitor at the source followed by a series
// capacitor. x = [C_shunt, C_series].
func ShuntCSeriesC(shunt, series evolution.Bound) Topology {
	return ladder("shunt_c_series_c", []evolution.Bound{shunt, series}, shuntC, seriesC)
}

// SeriesLShuntC is an L-section with the inductor on the source side.
// x = [L, C].
func SeriesLShuntC(l, c evolution.Bound) Topology {
	return ladder("series_l_shunt_c", []evolution.Bound{l, c}, seriesL, shuntC)
}

// ShuntCSeriesL is an L-section with the capacitor on the source side.
// x = [C, L].
func ShuntCSeriesL(c, l evolution.Bound) Topology {
	return ladder("shunt_c_series_l", []evolution.Bound{c, l}, shuntC, seriesL)
}

// ShuntLSeriesC is a high-pass L-section. x = [L, C].
func ShuntLSeriesC(l, c evolution.Bound) Topology {
	return ladder("shunt_l_series_c", []evolution.Bound{l, c}, shuntL, seriesC)
}

// PiCLC is a low-pass pi section. x = [C_source, L, C_antenna].
func PiCLC(c1, l, c2 evolution.Bound) Topology {
	return ladder("pi_clc", []evolution.Bound{c1, l, c2}, shuntC, seriesL, shuntC)
}

// DefaultTopologies returns every built-in topology over the default
// component ranges.
func DefaultTopologies() []Topology {
	c, l := DefaultCapacitance, DefaultInductance

	return []Topology{
		SeriesC(c),
		ShuntC(c),
		SeriesCShuntC(c, c),
		ShuntCSeriesC(c, c),
		SeriesLShuntC(l, c),
		ShuntCSeriesL(c, l),
		ShuntLSeriesC(l, c),
		PiCLC(c, l, c),
	}
}

// TopologyByName finds a topology in DefaultTopologies.
func TopologyByName(name string) (Topology, bool) {
	for _, t := range DefaultTopologies() {
		if t.Name == name {
			return t, true
		}
	}

	return Topology{}, false
}
