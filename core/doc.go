// SPDX-License-Identifier: MIT

// Package core implements the arithmetic of fixed-shape matrices as generic,
// layout-aware kernels over flat storage.
//
// Generated matrix types own a [R*C]T array and delegate every operation here
// with a slice of that array plus their layout.Layout. Kernels never allocate;
// the destination is always supplied by the caller, so results live in the
// caller's fixed-size value.
//
// Contract:
//   - Element-wise kernels (Add, Sub, Scale, Neg, Dot, Fill, Sum, Product)
//     assume operands share one layout and therefore index flat storage directly.
//   - Shape-aware kernels (Transpose, MatMul, Identity, Trace, TransposeInPlace)
//     take explicit layouts and translate positions through layout.Layout.At.
//   - Operand shapes are fixed by the generated types, so a mismatch is a
//     programmer error and panics; user-supplied indices never reach this package.
package core
