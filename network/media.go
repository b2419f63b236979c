// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spintools/constants"
)

// Media is a lossless transmission line with propagation constant γ = jω/c
// and real characteristic impedance Z0. Every network it builds lives on
// its frequency axis and reference impedance, so they cascade with each
// other and with measurements sampled on the same axis.
type Media struct {
	Frequency []float64
	Z0        float64
}

// NewLine returns the line media for freq (Hz, ascending) and z0 (Ω).
// freq is copied.
func NewLine(freq []float64, z0 float64) (*Media, error) {
	// reuse Network validation for the axis and z0
	probe := make([]SParams, len(freq))
	if _, err := New("line", freq, probe, 1, z0); err != nil {
		return nil, err
	}

	return &Media{Frequency: append([]float64(nil), freq...), Z0: z0}, nil
}

// Gamma returns the propagation constant jω/c at sample i.
func (m *Media) Gamma(i int) complex128 {
	return complex(0, 2*math.Pi*m.Frequency[i]/constants.C)
}

// Line returns a matched line section of physical length d (m).
func (m *Media) Line(d float64) (*Network, error) {
	if err := checkValue("line length", d); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("line,%gm", d), func(i int) SParams {
		t := cmplx.Exp(-m.Gamma(i) * complex(d, 0))
		return SParams{{0, t}, {t, 0}}
	}), nil
}

// Capacitor returns a series capacitor of c farads.
func (m *Media) Capacitor(c float64) (*Network, error) {
	if err := checkValue("capacitance", c); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("C=%gF", c), func(i int) SParams {
		return m.seriesY(complex(0, m.omega(i)*c))
	}), nil
}

// Inductor returns a series inductor of l henries.
func (m *Media) Inductor(l float64) (*Network, error) {
	if err := checkValue("inductance", l); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("L=%gH", l), func(i int) SParams {
		return m.seriesZ(complex(0, m.omega(i)*l))
	}), nil
}

// Resistor returns a series resistor of r ohms.
func (m *Media) Resistor(r float64) (*Network, error) {
	if err := checkValue("resistance", r); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("R=%gOhm", r), func(int) SParams {
		return m.seriesZ(complex(r, 0))
	}), nil
}

// ShuntCapacitor returns a capacitor of c farads from the through line to
// ground.
func (m *Media) ShuntCapacitor(c float64) (*Network, error) {
	if err := checkValue("capacitance", c); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("shunt C=%gF", c), func(i int) SParams {
		return m.shuntY(complex(0, m.omega(i)*c))
	}), nil
}

// ShuntInductor returns an inductor of l henries from the through line to
// ground.
func (m *Media) ShuntInductor(l float64) (*Network, error) {
	if err := checkValue("inductance", l); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("shunt L=%gH", l), func(i int) SParams {
		return m.shuntZ(complex(0, m.omega(i)*l))
	}), nil
}

// ShuntResistor returns a resistor of r ohms from the through line to
// ground. r = 0 is a short to ground.
func (m *Media) ShuntResistor(r float64) (*Network, error) {
	if err := checkValue("resistance", r); err != nil {
		return nil, err
	}

	return m.twoPort(fmt.Sprintf("shunt R=%gOhm", r), func(int) SParams {
		return m.shuntZ(complex(r, 0))
	}), nil
}

// Load returns the one-port with reflection coefficient gamma at every
// frequency.
func (m *Media) Load(gamma complex128) *Network {
	return m.onePort(fmt.Sprintf("load,%v", gamma), func(int) complex128 { return gamma })
}

// Match returns the reflectionless one-port.
func (m *Media) Match() *Network { return m.Load(0) }

// Short returns the short-circuit one-port.
func (m *Media) Short() *Network { return m.Load(-1) }

// Open returns the open-circuit one-port.
func (m *Media) Open() *Network { return m.Load(1) }

// Terminate returns the one-port loaded by impedance z.
func (m *Media) Terminate(z complex128) (*Network, error) {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return nil, fmt.Errorf("terminate z=%v: %w", z, ErrBadNetwork)
	}
	z0 := complex(m.Z0, 0)
	if z+z0 == 0 {
		return nil, fmt.Errorf("terminate z=%v: singular reflection: %w", z, ErrBadNetwork)
	}

	return m.Load((z - z0) / (z + z0)), nil
}

func (m *Media) omega(i int) float64 { return 2 * math.Pi * m.Frequency[i] }

// seriesZ: S11 = Z/(Z+2Z0), S21 = 2Z0/(Z+2Z0).
func (m *Media) seriesZ(z complex128) SParams {
	z0 := complex(m.Z0, 0)
	d := z + 2*z0
	r, t := z/d, 2*z0/d

	return SParams{{r, t}, {t, r}}
}

// seriesY is seriesZ written in admittance form, finite for Y = 0.
func (m *Media) seriesY(y complex128) SParams {
	z0 := complex(m.Z0, 0)
	d := 1 + 2*z0*y
	r, t := 1/d, 2*z0*y/d

	return SParams{{r, t}, {t, r}}
}

// shuntY: S11 = −YZ0/(2+YZ0), S21 = 2/(2+YZ0).
func (m *Media) shuntY(y complex128) SParams {
	z0 := complex(m.Z0, 0)
	d := 2 + y*z0
	r, t := -y*z0/d, 2/d

	return SParams{{r, t}, {t, r}}
}

// shuntZ is shuntY written in impedance form, finite for Z = 0.
func (m *Media) shuntZ(z complex128) SParams {
	z0 := complex(m.Z0, 0)
	d := 2*z + z0
	r, t := -z0/d, 2*z/d

	return SParams{{r, t}, {t, r}}
}

func (m *Media) twoPort(name string, at func(i int) SParams) *Network {
	s := make([]SParams, len(m.Frequency))
	for i := range s {
		s[i] = at(i)
	}

	return &Network{Name: name, Frequency: m.Frequency, S: s, Ports: 2, Z0: m.Z0}
}

func (m *Media) onePort(name string, at func(i int) complex128) *Network {
	s := make([]SParams, len(m.Frequency))
	for i := range s {
		s[i][0][0] = at(i)
	}

	return &Network{Name: name, Frequency: m.Frequency, S: s, Ports: 1, Z0: m.Z0}
}

func checkValue(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s %g: %w", what, v, ErrBadNetwork)
	}

	return nil
}
