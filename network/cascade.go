// SPDX-License-Identifier: MIT

package network

import "fmt"

// Cascade connects port 2 of a to port 1 of b.
//
// a must be a 2-port. If b is a 2-port the result is a 2-port, if b is a
// 1-port the result is the 1-port seen at port 1 of a.
//
// Stage 1: check ports, Z0 and frequency axes.
// Stage 2: per frequency, combine with the star product
//
//	D   = 1 − a22·b11
//	S11 = a11 + a12·b11·a21/D
//	S12 = a12·b12/D
//	S21 = a21·b21/D
//	S22 = b22 + b21·a22·b12/D
//
// Errors: ErrPortMismatch, ErrFrequencyMismatch, ErrBadNetwork when D = 0.
// Complexity: O(len(Frequency)).
func Cascade(a, b *Network) (*Network, error) {
	// Stage 1
	if a == nil || b == nil {
		return nil, fmt.Errorf("cascade: nil network: %w", ErrBadNetwork)
	}
	if a.Ports != 2 {
		return nil, fmt.Errorf("cascade %s ** %s: left side has %d ports: %w", a.Name, b.Name, a.Ports, ErrPortMismatch)
	}
	if a.Z0 != b.Z0 {
		return nil, fmt.Errorf("cascade %s ** %s: z0 %g vs %g: %w", a.Name, b.Name, a.Z0, b.Z0, ErrPortMismatch)
	}
	if !sameAxis(a.Frequency, b.Frequency) {
		return nil, fmt.Errorf("cascade %s ** %s: %w", a.Name, b.Name, ErrFrequencyMismatch)
	}

	// Stage 2
	s := make([]SParams, len(a.S))
	for i := range s {
		x, y := a.S[i], b.S[i]
		d := 1 - x[1][1]*y[0][0]
		if d == 0 {
			return nil, fmt.Errorf("cascade %s ** %s: singular at %g Hz: %w", a.Name, b.Name, a.Frequency[i], ErrBadNetwork)
		}
		s[i][0][0] = x[0][0] + x[0][1]*y[0][0]*x[1][0]/d
		if b.Ports == 2 {
			s[i][0][1] = x[0][1] * y[0][1] / d
			s[i][1][0] = x[1][0] * y[1][0] / d
			s[i][1][1] = y[1][1] + y[1][0]*x[1][1]*y[0][1]/d
		}
	}

	return &Network{
		Name:      a.Name + "**" + b.Name,
		Frequency: a.Frequency,
		S:         s,
		Ports:     b.Ports,
		Z0:        a.Z0,
	}, nil
}

// CascadeAll folds Cascade from left to right. Every network but the last
// must be a 2-port.
func CascadeAll(nets ...*Network) (*Network, error) {
	if len(nets) == 0 {
		return nil, fmt.Errorf("cascade: no networks: %w", ErrBadNetwork)
	}
	out := nets[0]
	if out == nil {
		return nil, fmt.Errorf("cascade: nil network: %w", ErrBadNetwork)
	}
	for _, n := range nets[1:] {
		var err error
		if out, err = Cascade(out, n); err != nil {
			return nil, err
		}
	}

	return out, nil
}
