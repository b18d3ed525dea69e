// SPDX-License-Identifier: MIT

// Package interchange exposes fixed-shape matrix storage to external array
// consumers without copying, and accepts external buffers as construction input.
//
// Descriptors:
//   - ArrayInterface follows the host array interface, version 3: data address,
//     shape (rows, cols), byte strides, type tag and version.
//   - CUDAArrayInterface adds the accelerator stream token. Matrices never live
//     on a device here, so built descriptors always carry "no synchronization".
//
// Shape is always reported as (rows, cols); strides follow the real storage
// order, so a consumer indexing by shape/strides reconstructs the logical
// matrix for both row-major and column-major types.
//
// Borrowing contract:
//   - A descriptor is a view: it owns nothing and is valid only while the
//     source value is alive and not being mutated by someone else.
//   - Build it on demand, hand it to the consumer, discard it.
//
// Writable flag:
//   - Descriptors always report writable, even for read-only (Const) matrix
//     types. Many consumers reject or warn on read-only buffers, so the flag is
//     kept permissive on purpose; consumers must not write through descriptors
//     of Const types.
package interchange
