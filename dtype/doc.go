// SPDX-License-Identifier: MIT

// Package dtype describes the scalar element types a fixed-shape matrix may hold.
//
// It provides:
//   - Float, the generic constraint every matrix kernel is instantiated with.
//   - Kind, a runtime tag for the supported widths (float32, float64).
//   - TypeStr, the array-interface type tag (e.g. "<f8") used both when
//     describing memory to consumers and when validating incoming buffers.
//
// Element types are a generation-time concern: each generated matrix type is
// bound to exactly one Kind, and the generic kernels are monomorphized per width.
package dtype
