// SPDX-License-Identifier: MIT

// Package network models one- and two-port microwave networks by their
// scattering parameters sampled on a frequency axis.
//
// It covers what a matching-network search needs and nothing more:
//
//   - Network: frequency axis, S-parameters, port count and a real reference
//     impedance Z0 shared by all ports.
//   - Media: a lossless transmission line (γ = jω/c) that manufactures
//     lumped series and shunt elements, line sections and terminations on
//     its own frequency axis.
//   - Cascade / CascadeAll: connection of port 2 of one network to port 1 of
//     the next (2-port∘2-port gives a 2-port, 2-port∘1-port gives a 1-port).
//   - ReadTouchstone / LoadTouchstone: Touchstone v1 .s1p/.s2p measurements.
//
// All networks taking part in one cascade must share the frequency axis and
// Z0; no renormalization or interpolation is performed.
//
// Example:
//
//	raw, _ := network.LoadTouchstone("antenna.s1p")
//	line, _ := network.NewLine(raw.Frequency, 50)
//	c, _ := line.Capacitor(22e-12)
//	matched, _ := network.Cascade(c, raw)
//	db := matched.S11DB()
package network
