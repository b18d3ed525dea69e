// SPDX-License-Identifier: MIT
// Package persist: sentinel error set.
// Every failure is wrapped once with the operation and path; callers match
// with errors.Is.

package persist

import "errors"

var (
	// ErrNotFound reports a missing file or a file without the requested dataset.
	ErrNotFound = errors.New("persist: array couldn't be found")

	// ErrShapeMismatch reports a stored shape or partition that differs from the ReadInto target.
	ErrShapeMismatch = errors.New("persist: shape mismatch")

	// ErrTypeMismatch reports a stored element type that differs from the requested one.
	ErrTypeMismatch = errors.New("persist: element type mismatch")

	// ErrCorrupt reports missing or inconsistent metadata attributes.
	ErrCorrupt = errors.New("persist: corrupt array metadata")
)
