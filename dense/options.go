// SPDX-License-Identifier: MIT

// Package dense: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper applying them over the defaults.

package dense

import "fmt"

// DefaultPartition is the block shape used when none is given: 0 means
// "the whole extent" along that dimension.
const DefaultPartition = 0

// Option mutates Options during construction.
type Option func(*Options)

// Options holds construction-time settings of a Dense.
type Options struct {
	partRows int
	partCols int
}

// WithPartition sets the block shape (rows, cols) of the container.
// Values larger than the matrix are clipped to its extent.
// Panics if rows or cols is negative.
func WithPartition(rows, cols int) Option {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("dense: WithPartition(%d,%d): negative block shape", rows, cols))
	}

	return func(o *Options) {
		o.partRows = rows
		o.partCols = cols
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{partRows: DefaultPartition, partCols: DefaultPartition}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// clip resolves a partition extent against the matrix extent.
func clip(part, extent int) int {
	if part == 0 || part > extent {
		return extent
	}

	return part
}
