// SPDX-License-Identifier: MIT

package interchange

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/layout"
)

const ctxCopyInto = "interchange.CopyInto"

// Buffer is the input contract for constructing a matrix from external memory.
//   - NDim is the dimensionality the producer reports (1 or 2).
//   - Len is the total element count.
//   - TypeStr is the array-interface element tag (see dtype.TypeStr).
//   - Data points at Len contiguous elements in the producer's iteration order.
//
// Buffer borrows Data; it must stay valid until the consuming constructor returns.
// Len is trusted: it must not exceed the allocation behind Data, or CopyInto
// reads past it. NewBuffer derives Len from a slice and is the safe constructor.
type Buffer struct {
	NDim    int
	Len     int
	TypeStr string
	Data    unsafe.Pointer
}

// NewBuffer describes data as an ndim-dimensional buffer of T.
// The slice's order is the iteration order CopyInto will preserve.
func NewBuffer[T dtype.Float](data []T, ndim int) Buffer {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}

	return Buffer{
		NDim:    ndim,
		Len:     len(data),
		TypeStr: dtype.TypeStr[T](),
		Data:    p,
	}
}

// Validate checks buf against a target layout and element type T.
// MAIN DESCRIPTION:
//   - Fail-fast checks, in a fixed order, that the buffer can fill l exactly.
//
// Implementation:
//   - Stage 1: dimensionality - l.NDim() (1 for vectors, 2 otherwise).
//   - Stage 2: element count - l.Size().
//   - Stage 3: type tag - dtype.TypeStr[T]().
//   - Stage 4: non-nil data pointer.
//
// Errors:
//   - ErrDimensionMismatch, ErrSizeMismatch, ErrTypeMismatch, ErrNilData,
//     each wrapped with expected and actual values.
//
// Complexity:
//   - Time O(1), Space O(1).
func Validate[T dtype.Float](l layout.Layout, buf Buffer) error {
	if want := l.NDim(); buf.NDim != want {
		return fmt.Errorf("%s: want %dD, got %dD: %w", ctxCopyInto, want, buf.NDim, ErrDimensionMismatch)
	}
	if want := l.Size(); buf.Len != want {
		return fmt.Errorf("%s: want %d elements, got %d: %w", ctxCopyInto, want, buf.Len, ErrSizeMismatch)
	}
	if want := dtype.TypeStr[T](); buf.TypeStr != want {
		return fmt.Errorf("%s: want %q, got %q: %w", ctxCopyInto, want, buf.TypeStr, ErrTypeMismatch)
	}
	if buf.Data == nil {
		return fmt.Errorf("%s: %w", ctxCopyInto, ErrNilData)
	}

	return nil
}

// CopyInto validates buf (see Validate) and copies its elements into dst.
//
// Behavior highlights:
//   - All-or-nothing: dst is untouched unless every check passes.
//   - Elements are copied in the buffer's iteration order straight into dst's
//     native storage; no transposition is performed, whatever the source convention.
//
// Complexity:
//   - Time O(n), Space O(1).
func CopyInto[T dtype.Float](dst []T, l layout.Layout, buf Buffer) error {
	if err := Validate[T](l, buf); err != nil {
		return err
	}
	if len(dst) != l.Size() {
		panic("interchange: CopyInto: destination does not fit layout " + l.String())
	}
	copy(dst, unsafe.Slice((*T)(buf.Data), buf.Len))

	return nil
}
