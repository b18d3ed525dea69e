// SPDX-License-Identifier: MIT
// Package layout: sentinel error set.
// Every accessor failure MUST wrap one of these so callers can match with
// errors.Is. No accessor panics on user-supplied indices.

package layout

import "errors"

var (
	// ErrOutOfRange indicates that a logical index (row, column or linear)
	// falls outside [Origin, Origin+extent). The wrapped message names the index.
	ErrOutOfRange = errors.New("layout: index out of range")

	// ErrInvalidShape indicates a non-positive row or column count.
	ErrInvalidShape = errors.New("layout: invalid shape")
)
