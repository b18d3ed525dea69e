// SPDX-License-Identifier: MIT

// Package approx compares floating-point values within a number of units in
// the last place (ULP).
//
// Two values are almost equal when
//
//	|x-y| <= eps*|x+y|*ulp  or  |x-y| < minNormal
//
// where eps is the machine epsilon of the element type and minNormal its
// smallest positive normal value. The first clause scales the tolerance to the
// magnitude of the operands; the second accepts results that differ only by
// subnormal noise.
package approx

import (
	"math"

	"github.com/katalvlaran/smallmat/dtype"
)

// DefaultULP is the tolerance Equal uses.
const DefaultULP = 2

// Machine limits per element kind.
var (
	epsilon64   float64 = 0x1p-52
	epsilon32   float32 = 0x1p-23
	minNormal64 float64 = 0x1p-1022
	minNormal32 float32 = 0x1p-126
)

// AlmostEqual reports whether x and y agree within ulp units in the last place.
// NaN is never almost equal to anything; equal infinities are.
// Complexity: O(1).
func AlmostEqual[T dtype.Float](x, y T, ulp int) bool {
	if x == y {
		return true
	}
	eps, minNormal := limits[T]()
	diff := abs(x - y)
	if math.IsInf(float64(diff), 0) || math.IsNaN(float64(diff)) {
		return false
	}

	return diff <= eps*abs(x+y)*T(ulp) || diff < minNormal
}

// Equal is AlmostEqual with DefaultULP.
func Equal[T dtype.Float](x, y T) bool { return AlmostEqual(x, y, DefaultULP) }

// SliceEqual applies AlmostEqual pairwise; slices of different length differ.
func SliceEqual[T dtype.Float](a, b []T, ulp int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if !AlmostEqual(a[i], b[i], ulp) {
			return false
		}
	}

	return true
}

func limits[T dtype.Float]() (eps, minNormal T) {
	if dtype.KindOf[T]() == dtype.Float32 {
		return T(epsilon32), T(minNormal32)
	}

	return T(epsilon64), T(minNormal64)
}

func abs[T dtype.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
