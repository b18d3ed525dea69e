// SPDX-License-Identifier: MIT

// Package dense provides Dense, a runtime-shaped row-major container of
// float elements.
//
// Dense is the dynamic counterpart of the fixed-shape generated types:
//   - it is the source of construction buffers (Buffer) for fixed types,
//   - the target of ToDense conversions,
//   - and the unit the persist package writes and reads.
//
// Storage is one flat slice with offset = i*cols + j and zero-based indices.
// A partition (block shape) travels with the container; it never changes the
// element layout, it only controls how Block slices it and is recorded on disk.
//
// Complexity quicksheet:
//   - NewDense/FromRows/FromSlice: O(r*c); At/Set: O(1); Clone: O(r*c);
//     Block: O(block size); Buffer/ArrayInterface: O(1), no copy.
package dense
