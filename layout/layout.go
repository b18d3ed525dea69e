// SPDX-License-Identifier: MIT

// Package layout - storage order, index origin & bounds-checked offsets.
//
// Purpose:
//   - Describe how R×C logical elements map onto one contiguous buffer.
//   - Translate origin-relative (row, col) or linear indices into validated
//     storage offsets; every check happens before any memory is touched.
//   - Report byte strides for the actual storage order so interchange
//     descriptors stay consistent with the memory they describe.
//
// Complexity quicksheet:
//   - Offset, LinearOffset, Strides: O(1), no allocations on the success path.

package layout

import "fmt"

// ---------- error context tags ----------

const (
	ctxOffset       = "Offset"
	ctxLinearOffset = "LinearOffset"
)

// Order is the storage order of a matrix.
type Order uint8

const (
	// ColMajor stores columns contiguously ("F", Fortran order). It is the zero value.
	ColMajor Order = iota
	// RowMajor stores rows contiguously ("C" order).
	RowMajor
)

// String returns the NumPy spelling of the order: "F" or "C".
func (o Order) String() string {
	if o == RowMajor {
		return "C"
	}

	return "F"
}

// ParseOrder maps "F"/"C" (case-sensitive, NumPy spelling) to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "F":
		return ColMajor, nil
	case "C":
		return RowMajor, nil
	default:
		return ColMajor, fmt.Errorf("layout: unknown order %q (want F or C)", s)
	}
}

// Layout is the compile-time shape of a fixed matrix type.
//   - Rows, Cols are the logical extents (both > 0).
//   - Order selects the storage convention.
//   - Origin is the first valid logical index along each dimension.
//
// A Layout is a plain value; generated matrix types keep one per type in a
// package-level variable and never change it.
type Layout struct {
	Rows   int
	Cols   int
	Order  Order
	Origin int
}

// New validates the extents and returns a Layout.
// Returns ErrInvalidShape if rows<=0 or cols<=0.
func New(rows, cols int, order Order, origin int) (Layout, error) {
	if rows <= 0 || cols <= 0 {
		return Layout{}, fmt.Errorf("layout.New(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return Layout{Rows: rows, Cols: cols, Order: order, Origin: origin}, nil
}

// Size returns Rows*Cols.
func (l Layout) Size() int { return l.Rows * l.Cols }

// IsVector reports whether one of the extents is 1.
func (l Layout) IsVector() bool { return l.Rows == 1 || l.Cols == 1 }

// IsSquare reports whether Rows == Cols.
func (l Layout) IsSquare() bool { return l.Rows == l.Cols }

// NDim is the dimensionality an incoming buffer must have to fill this layout:
// 1 for vector shapes, 2 otherwise.
func (l Layout) NDim() int {
	if l.IsVector() {
		return 1
	}

	return 2
}

// Transposed returns the layout with swapped extents; order and origin are kept.
func (l Layout) Transposed() Layout {
	return Layout{Rows: l.Cols, Cols: l.Rows, Order: l.Order, Origin: l.Origin}
}

// At computes the storage offset of the zero-based position (i, j) without
// bounds checks. Callers MUST have validated i and j.
//
// Offsets:
//   - RowMajor: i*Cols + j
//   - ColMajor: j*Rows + i
func (l Layout) At(i, j int) int {
	if l.Order == RowMajor {
		return i*l.Cols + j
	}

	return j*l.Rows + i
}

// Offset validates the origin-relative pair (row, col) and returns its storage offset.
// MAIN DESCRIPTION:
//   - Bounds-checked translation of logical indices into the flat buffer.
//
// Implementation:
//   - Stage 1: check Origin ≤ row < Origin+Rows and Origin ≤ col < Origin+Cols.
//   - Stage 2: shift by Origin and apply the order-specific formula (see At).
//
// Errors:
//   - ErrOutOfRange wrapped with the offending pair, e.g. "Layout.Offset(7,6): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (l Layout) Offset(row, col int) (int, error) {
	i, j := row-l.Origin, col-l.Origin
	if i < 0 || i >= l.Rows || j < 0 || j >= l.Cols {
		return 0, fmt.Errorf("Layout.%s(%d,%d): %w", ctxOffset, row, col, ErrOutOfRange)
	}

	return l.At(i, j), nil
}

// LinearOffset validates an origin-relative linear index k and returns k-Origin.
// Valid range is [Origin, Origin+Rows*Cols). For vector shapes the linear
// index walks the logical elements in order, whatever the storage order.
func (l Layout) LinearOffset(k int) (int, error) {
	off := k - l.Origin
	if off < 0 || off >= l.Size() {
		return 0, fmt.Errorf("Layout.%s(%d): %w", ctxLinearOffset, k, ErrOutOfRange)
	}

	return off, nil
}

// Strides returns the byte strides (row step, column step) for elements of
// elemSize bytes, matching the actual storage order:
//   - RowMajor: (Cols*elemSize, elemSize)
//   - ColMajor: (elemSize, Rows*elemSize)
//
// A consumer walking offset = i*strides[0] + j*strides[1] over the normalized
// (Rows, Cols) shape reads the logical element (i, j) for both orders.
func (l Layout) Strides(elemSize int) [2]int {
	if l.Order == RowMajor {
		return [2]int{l.Cols * elemSize, elemSize}
	}

	return [2]int{elemSize, l.Rows * elemSize}
}

// String renders the layout as "6x6_F_SI1".
func (l Layout) String() string {
	return fmt.Sprintf("%dx%d_%s_SI%d", l.Rows, l.Cols, l.Order, l.Origin)
}
