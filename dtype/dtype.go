// SPDX-License-Identifier: MIT

package dtype

import (
	"fmt"
	"unsafe"
)

// Float is the constraint for matrix element types.
// It uses Go generics so kernels are checked and specialized at compile time.
type Float interface {
	~float32 | ~float64
}

// Kind is the runtime tag of an element type.
type Kind uint8

// Supported element kinds.
const (
	Invalid Kind = iota
	Float32
	Float64
)

// littleEndian reports the byte order of the host; type tags carry it explicitly.
var littleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// KindOf returns the Kind for the element type T.
// Complexity: O(1).
func KindOf[T Float]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// Named types (~float32/~float64) fall back to their width.
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}

	return Float64
}

// Size returns the byte width of one element.
func (k Kind) Size() int {
	switch k {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// TypeStr returns the array-interface type tag: byte order, 'f', byte width.
// Example: "<f8" for float64 on a little-endian host.
func (k Kind) TypeStr() string {
	if k == Invalid {
		return ""
	}
	order := byte('<')
	if !littleEndian {
		order = '>'
	}

	return fmt.Sprintf("%cf%d", order, k.Size())
}

// Parse maps a Go element spelling ("float32", "float64") back to a Kind.
// Used by the type generator to validate instantiation lists.
func Parse(name string) (Kind, error) {
	switch name {
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	default:
		return Invalid, fmt.Errorf("dtype: unsupported element type %q", name)
	}
}

// TypeStr returns the array-interface type tag of T.
func TypeStr[T Float]() string { return KindOf[T]().TypeStr() }

// SizeOf returns the byte width of T.
func SizeOf[T Float]() int { return KindOf[T]().Size() }
