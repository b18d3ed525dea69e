// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Public accessors and constructors return these, wrapped with method context
// by denseErrorf; tests match them with errors.Is.

package dense

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive dimensions, ragged rows, or a
	// flat slice whose length is not rows*cols.
	ErrInvalidDimensions = errors.New("dense: invalid dimensions")

	// ErrOutOfRange indicates a row, column or block index outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")
)
