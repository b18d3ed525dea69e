// SPDX-License-Identifier: MIT
// Package smallmat: sentinel errors returned by generated types, re-exported
// so callers can match them without importing the subpackages.

package smallmat

import (
	"github.com/katalvlaran/smallmat/interchange"
	"github.com/katalvlaran/smallmat/layout"
)

var (
	// ErrOutOfRange is returned by At/Set/Elem/SetElem for indices outside
	// [start, start+extent).
	ErrOutOfRange = layout.ErrOutOfRange

	// ErrDimensionMismatch is returned by NewXFromBuffer when the buffer's
	// dimensionality is not 1 for vectors or 2 otherwise.
	ErrDimensionMismatch = interchange.ErrDimensionMismatch

	// ErrSizeMismatch is returned by NewXFromBuffer when the buffer does not hold R*C elements.
	ErrSizeMismatch = interchange.ErrSizeMismatch

	// ErrTypeMismatch is returned by NewXFromBuffer for a buffer of another element type.
	ErrTypeMismatch = interchange.ErrTypeMismatch
)
