// SPDX-License-Identifier: MIT

package interchange

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/layout"
)

// Version is the array-interface protocol version reported by every descriptor.
const Version = 3

// Accelerator stream tokens with fixed meaning.
const (
	// LegacyDefaultStream is the legacy default stream.
	LegacyDefaultStream int64 = 1
	// PerThreadDefaultStream is the per-thread default stream.
	PerThreadDefaultStream int64 = 2
)

// Stream is an optional synchronization token of the accelerator descriptor.
// The zero value means "no synchronization required".
type Stream struct {
	handle int64
}

// NoStream is the token built descriptors carry.
var NoStream = Stream{}

// NewStream returns a token for handle h.
// Errors: ErrInvalidStream for 0, which would be ambiguous between "none" and
// the default stream.
func NewStream(h int64) (Stream, error) {
	if h == 0 {
		return Stream{}, fmt.Errorf("interchange.NewStream(%d): %w", h, ErrInvalidStream)
	}

	return Stream{handle: h}, nil
}

// Handle returns the stream handle and whether one is set.
func (s Stream) Handle() (int64, bool) { return s.handle, s.handle != 0 }

// IsNone reports whether the consumer may skip synchronization.
func (s Stream) IsNone() bool { return s.handle == 0 }

// ArrayInterface is the host memory-interchange descriptor.
// It borrows the storage it points at; see the package documentation.
type ArrayInterface struct {
	ptr unsafe.Pointer // first element; keeps the storage reachable while the view lives

	Shape    [2]int // (rows, cols), independent of storage order
	Strides  [2]int // byte strides matching the real storage order
	TypeStr  string // element tag, e.g. "<f8"
	Version  int    // always Version
	Writable bool   // always true, even for Const matrix types
}

// NewArrayInterface builds a host descriptor for R*C elements starting at base,
// laid out as l.
// MAIN DESCRIPTION:
//   - Normalized (rows, cols) shape plus order-specific byte strides.
//
// Implementation:
//   - Stage 1: shape = (l.Rows, l.Cols).
//   - Stage 2: strides = l.Strides(sizeof T).
//   - Stage 3: type tag from dtype, version 3, writable = true.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - base must point at the first of l.Size() contiguous elements.
func NewArrayInterface[T dtype.Float](base *T, l layout.Layout) ArrayInterface {
	return ArrayInterface{
		ptr:      unsafe.Pointer(base),
		Shape:    [2]int{l.Rows, l.Cols},
		Strides:  l.Strides(dtype.SizeOf[T]()),
		TypeStr:  dtype.TypeStr[T](),
		Version:  Version,
		Writable: true,
	}
}

// Pointer returns the borrowed address of the first element.
func (a ArrayInterface) Pointer() unsafe.Pointer { return a.ptr }

// Addr returns the address of the first element as an integer, the form
// consumers receive in the "data" entry.
func (a ArrayInterface) Addr() uintptr { return uintptr(a.ptr) }

// ReadOnly is the negation of Writable, the flag the "data" entry carries.
func (a ArrayInterface) ReadOnly() bool { return !a.Writable }

// Len returns rows*cols.
func (a ArrayInterface) Len() int { return a.Shape[0] * a.Shape[1] }

// Buffer re-exposes the described memory as a 2-D construction Buffer.
// Elements are handed out in memory order, which is what buffer construction copies.
func (a ArrayInterface) Buffer() Buffer {
	return Buffer{NDim: 2, Len: a.Len(), TypeStr: a.TypeStr, Data: a.ptr}
}

// Map renders the descriptor as the dictionary array consumers expect:
// data (address, read-only flag), shape, strides, typestr, version.
func (a ArrayInterface) Map() map[string]any {
	return map[string]any{
		"data":    []any{a.Addr(), a.ReadOnly()},
		"shape":   []int{a.Shape[0], a.Shape[1]},
		"strides": []int{a.Strides[0], a.Strides[1]},
		"typestr": a.TypeStr,
		"version": a.Version,
	}
}

// MarshalJSON encodes Map().
func (a ArrayInterface) MarshalJSON() ([]byte, error) { return json.Marshal(a.Map()) }

// CUDAArrayInterface is the accelerator descriptor: host fields plus a stream token.
type CUDAArrayInterface struct {
	ArrayInterface
	Stream Stream
}

// NewCUDAArrayInterface builds the accelerator descriptor. The storage never
// resides on a device, so the stream is always NoStream.
func NewCUDAArrayInterface[T dtype.Float](base *T, l layout.Layout) CUDAArrayInterface {
	return CUDAArrayInterface{ArrayInterface: NewArrayInterface(base, l), Stream: NoStream}
}

// WithStream returns a copy of the descriptor carrying s.
func (c CUDAArrayInterface) WithStream(s Stream) CUDAArrayInterface {
	c.Stream = s
	return c
}

// Map renders the host dictionary plus "stream": nil or the integer handle.
func (c CUDAArrayInterface) Map() map[string]any {
	m := c.ArrayInterface.Map()
	if h, ok := c.Stream.Handle(); ok {
		m["stream"] = h
	} else {
		m["stream"] = nil
	}

	return m
}

// MarshalJSON encodes Map().
func (c CUDAArrayInterface) MarshalJSON() ([]byte, error) { return json.Marshal(c.Map()) }

// Gather reads the described memory through its shape and strides and returns
// the logical rows. It is the consumer side of the contract: no knowledge of
// the producer's storage order is used.
//
// Errors:
//   - ErrTypeMismatch when the descriptor's tag does not match T.
//   - ErrNilData for a descriptor without an address.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned rows.
func Gather[T dtype.Float](a ArrayInterface) ([][]T, error) {
	if want := dtype.TypeStr[T](); a.TypeStr != want {
		return nil, fmt.Errorf("interchange.Gather: want %q, got %q: %w", want, a.TypeStr, ErrTypeMismatch)
	}
	if a.ptr == nil {
		return nil, fmt.Errorf("interchange.Gather: %w", ErrNilData)
	}
	rows := make([][]T, a.Shape[0])
	var i, j int
	for i = 0; i < a.Shape[0]; i++ {
		rows[i] = make([]T, a.Shape[1])
		for j = 0; j < a.Shape[1]; j++ {
			rows[i][j] = *(*T)(unsafe.Add(a.ptr, i*a.Strides[0]+j*a.Strides[1]))
		}
	}

	return rows, nil
}
