// SPDX-License-Identifier: MIT

package network

import "errors"

var (
	// ErrBadNetwork is returned for malformed networks or element values:
	// unsupported port count, length mismatch, unsorted frequency axis,
	// non-finite or negative component values, singular connections.
	ErrBadNetwork = errors.New("network: invalid network")

	// ErrPortMismatch is returned when a cascade is attempted between
	// networks whose port counts or reference impedances do not fit.
	ErrPortMismatch = errors.New("network: port mismatch")

	// ErrFrequencyMismatch is returned when cascaded networks do not share
	// the same frequency axis.
	ErrFrequencyMismatch = errors.New("network: frequency axes differ")

	// ErrTouchstone is returned for unreadable Touchstone data.
	ErrTouchstone = errors.New("network: malformed touchstone data")
)
