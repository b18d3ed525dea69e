// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/layout"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// mustFit panics when a flat buffer does not hold exactly l.Size() elements.
func mustFit(op string, n int, l layout.Layout) {
	if n != l.Size() {
		panic(fmt.Sprintf("core: %s: buffer of %d elements does not fit layout %s", op, n, l))
	}
}

// Transpose writes the transpose of src (layout sl) into dst (layout dl).
// MAIN DESCRIPTION:
//   - dst(j,i) = src(i,j) for every logical position; each side uses its own order.
//
// Implementation:
//   - Stage 1: verify dl is sl with swapped extents.
//   - Stage 2: fixed i→j walk over src, translating both offsets through layout.At.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - dst must not alias src; use TransposeInPlace for square in-place swaps.
func Transpose[T dtype.Float](dst []T, dl layout.Layout, src []T, sl layout.Layout) {
	mustFit(opTrans, len(src), sl)
	mustFit(opTrans, len(dst), dl)
	if dl.Rows != sl.Cols || dl.Cols != sl.Rows {
		panic("core: Transpose: destination extents are not swapped source extents")
	}
	var i, j int
	for i = 0; i < sl.Rows; i++ {
		for j = 0; j < sl.Cols; j++ {
			dst[dl.At(j, i)] = src[sl.At(i, j)]
		}
	}
}

// TransposeInPlace swaps (i,j) with (j,i) for every i<j of a square layout.
// Complexity: O(n²) time, O(1) space.
func TransposeInPlace[T dtype.Float](data []T, l layout.Layout) {
	mustFit(opTransIP, len(data), l)
	if !l.IsSquare() {
		panic("core: TransposeInPlace: layout is not square")
	}
	var i, j, p, q int
	for i = 0; i < l.Rows; i++ {
		for j = i + 1; j < l.Cols; j++ {
			p, q = l.At(i, j), l.At(j, i)
			data[p], data[q] = data[q], data[p]
		}
	}
}

// Identity writes the identity into a square layout: ones on the diagonal, zeros elsewhere.
func Identity[T dtype.Float](dst []T, l layout.Layout) {
	mustFit(opIdent, len(dst), l)
	if !l.IsSquare() {
		panic("core: Identity: layout is not square")
	}
	Fill(dst, 0)
	for i := 0; i < l.Rows; i++ {
		dst[l.At(i, i)] = 1
	}
}

// Trace returns the sum of the diagonal of a square layout.
func Trace[T dtype.Float](src []T, l layout.Layout) T {
	mustFit(opTrace, len(src), l)
	if !l.IsSquare() {
		panic("core: Trace: layout is not square")
	}
	var acc T
	for i := 0; i < l.Rows; i++ {
		acc += src[l.At(i, i)]
	}

	return acc
}

// MatMul computes dst = a × b by contraction over the shared dimension.
// MAIN DESCRIPTION:
//   - Standard product; no broadcasting, no shape coercion.
//
// Implementation:
//   - Stage 1: verify al.Cols == bl.Rows and dl == (al.Rows, bl.Cols).
//   - Stage 2: for each (i,j), accumulate Σ_k a(i,k)*b(k,j) in a local, then store.
//
// Behavior highlights:
//   - Operands may use different storage orders; every access goes through its own layout.
//   - Accumulation order is fixed (k ascending), so results are deterministic.
//
// Complexity:
//   - Time O(r*n*c), Space O(1).
//
// Notes:
//   - dst must not alias a or b.
func MatMul[T dtype.Float](dst []T, dl layout.Layout, a []T, al layout.Layout, b []T, bl layout.Layout) {
	mustFit(opMatMul, len(a), al)
	mustFit(opMatMul, len(b), bl)
	mustFit(opMatMul, len(dst), dl)
	if al.Cols != bl.Rows || dl.Rows != al.Rows || dl.Cols != bl.Cols {
		panic(fmt.Sprintf("core: MatMul: non-conforming shapes %s × %s -> %s", al, bl, dl))
	}
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < al.Rows; i++ {
		for j = 0; j < bl.Cols; j++ {
			acc = 0
			for k = 0; k < al.Cols; k++ {
				acc += a[al.At(i, k)] * b[bl.At(k, j)]
			}
			dst[dl.At(i, j)] = acc
		}
	}
}

// Format renders one logical row per line, e.g. "[1, 2]\n[3, 4]\n",
// independent of the storage order.
// Complexity: O(r*c).
func Format[T dtype.Float](src []T, l layout.Layout) string {
	mustFit("Format", len(src), l)
	var sb strings.Builder
	var i, j int
	for i = 0; i < l.Rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < l.Cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", src[l.At(i, j)])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
