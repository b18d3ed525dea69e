// SPDX-License-Identifier: MIT

package core

import "github.com/katalvlaran/smallmat/dtype"

// Operation name constants for panic messages.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opScale   = "Scale"
	opNeg     = "Neg"
	opDot     = "Dot"
	opEqual   = "Equal"
	opMatMul  = "MatMul"
	opTrans   = "Transpose"
	opTransIP = "TransposeInPlace"
	opTrace   = "Trace"
	opIdent   = "Identity"
)

// mustSameLen panics when flat operands disagree in length (generator bug).
func mustSameLen(op string, n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic("core: " + op + ": operand length mismatch")
		}
	}
}

// Fill sets every element of dst to v.
// Complexity: O(n).
func Fill[T dtype.Float](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Add computes dst[k] = a[k] + b[k].
// dst may alias a or b.
// Complexity: O(n).
func Add[T dtype.Float](dst, a, b []T) {
	mustSameLen(opAdd, len(dst), len(a), len(b))
	for k := range dst {
		dst[k] = a[k] + b[k]
	}
}

// Sub computes dst[k] = a[k] - b[k].
// Complexity: O(n).
func Sub[T dtype.Float](dst, a, b []T) {
	mustSameLen(opSub, len(dst), len(a), len(b))
	for k := range dst {
		dst[k] = a[k] - b[k]
	}
}

// Scale computes dst[k] = a[k] * s (matrix on the left).
// Complexity: O(n).
func Scale[T dtype.Float](dst, a []T, s T) {
	mustSameLen(opScale, len(dst), len(a))
	for k := range dst {
		dst[k] = a[k] * s
	}
}

// ScaleLeft computes dst[k] = s * a[k] (scalar on the left).
// Complexity: O(n).
func ScaleLeft[T dtype.Float](dst []T, s T, a []T) {
	mustSameLen(opScale, len(dst), len(a))
	for k := range dst {
		dst[k] = s * a[k]
	}
}

// Neg computes dst[k] = -a[k].
func Neg[T dtype.Float](dst, a []T) {
	mustSameLen(opNeg, len(dst), len(a))
	for k := range dst {
		dst[k] = -a[k]
	}
}

// Dot returns Σ a[k]*b[k] for two operands of the same shape.
// Complexity: O(n).
func Dot[T dtype.Float](a, b []T) T {
	mustSameLen(opDot, len(a), len(b))
	var acc T
	for k := range a {
		acc += a[k] * b[k]
	}

	return acc
}

// Sum returns the sum of all elements.
func Sum[T dtype.Float](a []T) T {
	var acc T
	for _, v := range a {
		acc += v
	}

	return acc
}

// Product returns the product of all elements (1 for empty input).
func Product[T dtype.Float](a []T) T {
	acc := T(1)
	for _, v := range a {
		acc *= v
	}

	return acc
}

// Equal reports exact element-wise equality of two same-shape operands.
// NaN never equals NaN, matching ==.
func Equal[T dtype.Float](a, b []T) bool {
	mustSameLen(opEqual, len(a), len(b))
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
