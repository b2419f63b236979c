// SPDX-License-Identifier: MIT

// Package antenna searches component values of passive matching networks
// placed in front of a measured antenna.
//
// The figure of merit for a component vector x is built by Objective:
//
//	Stage 1: build the matched network with the topology's BuildFunc.
//	Stage 2: take |S11| in dB on the full frequency axis.
//	Stage 3: keep samples strictly inside the band and at or above the depth
//	         floor. Notches below the floor carry no weight, so the search
//	         does not chase unphysically narrow nulls.
//	Stage 4: integrate the kept samples over frequency (trapezoidal rule)
//	         and scale by 1e-6.
//
// Optimize runs one bounded differential-evolution search per topology, in
// input order, against a lossless 50 Ω reference line sampled on the raw
// network's own frequency axis.
package antenna
