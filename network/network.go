// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// SParams is the scattering matrix at one frequency, indexed [out][in]
// from zero. One-port networks only use [0][0].
type SParams [2][2]complex128

// Network is an S-parameter sweep. Frequency is in Hz, strictly ascending,
// and has one SParams entry per sample.
type Network struct {
	Name      string
	Frequency []float64
	S         []SParams
	Ports     int
	Z0        float64
}

// New validates and returns a Network. freq and s are not copied.
func New(name string, freq []float64, s []SParams, ports int, z0 float64) (*Network, error) {
	if ports != 1 && ports != 2 {
		return nil, fmt.Errorf("%s: %d ports: %w", name, ports, ErrBadNetwork)
	}
	if len(freq) == 0 || len(freq) != len(s) {
		return nil, fmt.Errorf("%s: %d frequencies, %d samples: %w", name, len(freq), len(s), ErrBadNetwork)
	}
	if math.IsNaN(z0) || math.IsInf(z0, 0) || z0 <= 0 {
		return nil, fmt.Errorf("%s: z0=%g: %w", name, z0, ErrBadNetwork)
	}
	for i, f := range freq {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return nil, fmt.Errorf("%s: frequency[%d]=%g: %w", name, i, f, ErrBadNetwork)
		}
		if i > 0 && f <= freq[i-1] {
			return nil, fmt.Errorf("%s: frequency not ascending at %d: %w", name, i, ErrBadNetwork)
		}
	}

	return &Network{Name: name, Frequency: freq, S: s, Ports: ports, Z0: z0}, nil
}

// Len returns the number of frequency samples.
func (n *Network) Len() int { return len(n.Frequency) }

// S11 returns the input reflection coefficient per frequency.
func (n *Network) S11() []complex128 {
	out := make([]complex128, len(n.S))
	for i := range n.S {
		out[i] = n.S[i][0][0]
	}

	return out
}

// S11DB returns 20·log10|S11| per frequency. A perfect match gives −Inf.
func (n *Network) S11DB() []float64 {
	out := make([]float64, len(n.S))
	for i := range n.S {
		out[i] = 20 * math.Log10(cmplx.Abs(n.S[i][0][0]))
	}

	return out
}

// Crop returns the sub-network with lo ≤ f ≤ hi. The result shares no
// storage with n.
func (n *Network) Crop(lo, hi float64) (*Network, error) {
	if !(lo <= hi) {
		return nil, fmt.Errorf("%s: crop [%g, %g]: %w", n.Name, lo, hi, ErrBadNetwork)
	}
	start := sort.SearchFloat64s(n.Frequency, lo)
	end := sort.Search(len(n.Frequency), func(i int) bool { return n.Frequency[i] > hi })
	if start >= end {
		return nil, fmt.Errorf("%s: no samples in [%g, %g]: %w", n.Name, lo, hi, ErrBadNetwork)
	}

	freq := append([]float64(nil), n.Frequency[start:end]...)
	s := append([]SParams(nil), n.S[start:end]...)

	return &Network{Name: n.Name, Frequency: freq, S: s, Ports: n.Ports, Z0: n.Z0}, nil
}

// sameAxis reports whether two frequency axes agree to a relative 1e-9.
func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9*math.Max(math.Abs(a[i]), 1) {
			return false
		}
	}

	return true
}
