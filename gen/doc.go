// SPDX-License-Identifier: MIT

// Package gen expands an instantiation list into concrete fixed-shape matrix
// types and renders them as Go source.
//
// Pipeline:
//   - Config: YAML list of (element type, rows, cols, order, start index, const).
//   - Build: every instance contributes the triple (matrix, R×1 column vector,
//     1×C row vector, vectors always column-major); transposes are added until
//     the set is closed; duplicates merge.
//   - Render: one struct type per planned shape with its conditional method set,
//     formatted with go/format.
//
// Conditional surface:
//   - square types get Identity, Trace and TransposeInPlace;
//   - vectors get the linear accessor Elem;
//   - const types get no mutators;
//   - square instances link their companions: Mul, MulVec and, on the row
//     vector, MulMat.
//
// A row vector carries a single MulMat, so two square instances that share one
// (same element type, size and start index, differing only in order) are
// rejected with ErrInvalidConfig.
package gen
