// SPDX-License-Identifier: MIT

// Package dense - row-major storage & safe accessors.
//
// Purpose:
//   - Keep the explicit index formula i*cols + j over one flat buffer.
//   - Guarantee safety at the public surface: At/Set/Block return errors
//     instead of panicking.
//   - Expose the buffer to the interchange contract without copying.

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/interchange"
	"github.com/katalvlaran/smallmat/layout"
)

// ---------- error context tags ----------

const (
	ctxNew       = "NewDense"
	ctxFromRows  = "FromRows"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxBlock     = "Block"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r, c hold dimensions (both > 0).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - pr, pc is the resolved block shape (1 ≤ pr ≤ r, 1 ≤ pc ≤ c).
type Dense[T dtype.Float] struct {
	r, c   int
	data   []T
	pr, pc int
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//   - Stage 3: resolve the partition from options.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T dtype.Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols, make([]T, rows*cols), opts), nil
}

// FromRows copies a rectangular [][]T (logical rows) into a new Dense.
// Errors: ErrInvalidDimensions on empty input or ragged rows.
// Complexity: O(r*c).
func FromRows[T dtype.Float](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf(ctxFromRows, len(rows), 0, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]T, 0, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRows, i, len(rows[i]), ErrInvalidDimensions)
		}
		data = append(data, rows[i]...)
	}

	return newDense(r, c, data, opts), nil
}

// FromSlice copies data, read as row-major rows×cols, into a new Dense.
// Errors: ErrInvalidDimensions if a dimension is non-positive or len(data) != rows*cols.
// Complexity: O(r*c).
func FromSlice[T dtype.Float](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, denseErrorf(ctxFromSlice, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return newDense(rows, cols, buf, opts), nil
}

// newDense assembles a Dense over an already validated buffer.
func newDense[T dtype.Float](rows, cols int, data []T, opts []Option) *Dense[T] {
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: data,
		pr:   clip(o.partRows, rows),
		pc:   clip(o.partCols, cols),
	}
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense[T]) Len() int { return len(m.data) }

// Partition returns the resolved block shape.
func (m *Dense[T]) Partition() (rows, cols int) { return m.pr, m.pc }

// Blocks returns how many blocks the partition yields along each dimension;
// trailing blocks may be smaller.
func (m *Dense[T]) Blocks() (rows, cols int) {
	return (m.r + m.pr - 1) / m.pr, (m.c + m.pc - 1) / m.pc
}

// Layout describes the storage as a zero-origin row-major layout.
func (m *Dense[T]) Layout() layout.Layout {
	return layout.Layout{Rows: m.r, Cols: m.c, Order: layout.RowMajor, Origin: 0}
}

// indexOf bounds-checks (row, col) and returns the row-major offset.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at zero-based (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at zero-based (row, col); nothing is written on error.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Raw returns the backing row-major slice. Mutations are visible in m.
func (m *Dense[T]) Raw() []T { return m.data }

// Rows2D copies the contents out as logical rows.
// Complexity: O(r*c).
func (m *Dense[T]) Rows2D() [][]T {
	out := make([][]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy carrying the same partition.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, pr: m.pr, pc: m.pc}
}

// Block copies block (bi, bj) of the partition into a new Dense.
// MAIN DESCRIPTION:
//   - Materialize one tile of the partition grid.
//
// Implementation:
//   - Stage 1: validate 0 ≤ bi < Blocks().rows and 0 ≤ bj < Blocks().cols.
//   - Stage 2: compute the tile extent, clipped at the trailing edge.
//   - Stage 3: copy tile rows.
//
// Errors:
//   - ErrOutOfRange for a block index outside the grid.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Dense[T]) Block(bi, bj int) (*Dense[T], error) {
	nbr, nbc := m.Blocks()
	if bi < 0 || bi >= nbr || bj < 0 || bj >= nbc {
		return nil, denseErrorf(ctxBlock, bi, bj, ErrOutOfRange)
	}
	r0, c0 := bi*m.pr, bj*m.pc
	h, w := min(m.pr, m.r-r0), min(m.pc, m.c-c0)
	data := make([]T, 0, h*w)
	var i int
	for i = 0; i < h; i++ {
		off := (r0+i)*m.c + c0
		data = append(data, m.data[off:off+w]...)
	}

	return &Dense[T]{r: h, c: w, data: data, pr: h, pc: w}, nil
}

// Buffer describes the storage as a construction buffer without copying.
// One-row and one-column containers report 1 dimension, everything else 2,
// matching what vector and matrix targets accept.
// The Buffer borrows m's storage.
func (m *Dense[T]) Buffer() interchange.Buffer {
	ndim := 2
	if m.r == 1 || m.c == 1 {
		ndim = 1
	}

	return interchange.NewBuffer(m.data, ndim)
}

// ArrayInterface returns a host descriptor of the storage (row-major strides).
// The descriptor borrows m's storage.
func (m *Dense[T]) ArrayInterface() interchange.ArrayInterface {
	return interchange.NewArrayInterface(&m.data[0], m.Layout())
}

// Equal reports whether m and other have the same shape and elements.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m.r != other.r || m.c != other.c {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
