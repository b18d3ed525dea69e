// SPDX-License-Identifier: MIT

package persist

import (
	"log/slog"
)

// DefaultDataset is the dataset name arrays are stored under.
const DefaultDataset = "data"

// Option configures a persistence call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	logger  *slog.Logger
	dataset string
}

// WithLogger routes structured debug/info records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("persist: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithDataset stores or loads the array under name instead of DefaultDataset.
// Panics on an empty name.
func WithDataset(name string) Option {
	if name == "" {
		panic("persist: WithDataset(\"\")")
	}

	return func(o *Options) { o.dataset = name }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:  slog.New(slog.DiscardHandler),
		dataset: DefaultDataset,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
