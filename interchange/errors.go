// SPDX-License-Identifier: MIT
// Package interchange: sentinel error set.
// Buffer validation returns these wrapped with the expected and actual values;
// callers match with errors.Is. Validation happens before any element is copied.

package interchange

import "errors"

var (
	// ErrDimensionMismatch reports a buffer whose dimensionality differs from
	// the target (1 for vector shapes, 2 otherwise).
	ErrDimensionMismatch = errors.New("interchange: dimensionality mismatch")

	// ErrSizeMismatch reports a buffer whose element count differs from R*C.
	ErrSizeMismatch = errors.New("interchange: element count mismatch")

	// ErrTypeMismatch reports a buffer whose type tag differs from the element type.
	ErrTypeMismatch = errors.New("interchange: element type mismatch")

	// ErrNilData reports a non-empty buffer without a data pointer.
	ErrNilData = errors.New("interchange: nil data pointer")

	// ErrInvalidStream reports the disallowed stream token 0.
	ErrInvalidStream = errors.New("interchange: stream 0 is disallowed")
)
