// SPDX-License-Identifier: MIT

package smallmat

import (
	"fmt"

	"github.com/katalvlaran/smallmat/dense"
	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/interchange"
	"github.com/katalvlaran/smallmat/layout"
)

// Matrix is the read surface shared by every generated type (through its
// pointer). Shape-specific operations stay on the concrete types.
type Matrix[T dtype.Float] interface {
	fmt.Stringer
	Layout() layout.Layout
	At(row, col int) (T, error)
	Data() []T
	Sum() T
	Product() T
	ArrayInterface() interchange.ArrayInterface
	CUDAArrayInterface() interchange.CUDAArrayInterface
}

// Mutable is Matrix plus element assignment; const types do not implement it.
type Mutable[T dtype.Float] interface {
	Matrix[T]
	Set(row, col int, v T) error
}

// ToDense copies m into a new row-major Dense with zero-based indices,
// whatever m's storage order and start index.
// Complexity: O(r*c).
func ToDense[T dtype.Float](m Matrix[T], opts ...dense.Option) *dense.Dense[T] {
	l := m.Layout()
	data := m.Data()
	out := make([]T, l.Size())
	var i, j int
	for i = 0; i < l.Rows; i++ {
		for j = 0; j < l.Cols; j++ {
			out[i*l.Cols+j] = data[l.At(i, j)]
		}
	}
	d, err := dense.FromSlice(l.Rows, l.Cols, out, opts...)
	if err != nil {
		// Layouts of generated types always have positive extents.
		panic(err)
	}

	return d
}

// FromDense fills dst from src in logical order. Unlike NewXFromBuffer, which
// copies in the buffer's iteration order, element (i, j) of src always lands
// at logical (start+i, start+j) of dst.
// Errors: dense.ErrInvalidDimensions when the shapes differ; dst is untouched then.
func FromDense[T dtype.Float](dst Mutable[T], src *dense.Dense[T]) error {
	l := dst.Layout()
	rows, cols := src.Shape()
	if rows != l.Rows || cols != l.Cols {
		return fmt.Errorf("smallmat.FromDense: want %dx%d, got %dx%d: %w",
			l.Rows, l.Cols, rows, cols, dense.ErrInvalidDimensions)
	}
	data := dst.Data()
	raw := src.Raw()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[l.At(i, j)] = raw[i*cols+j]
		}
	}

	return nil
}

// View returns the zero-copy host descriptor of m. It borrows m's storage.
func View[T dtype.Float](m Matrix[T]) interchange.ArrayInterface { return m.ArrayInterface() }
