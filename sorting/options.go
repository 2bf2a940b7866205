package sorting

import (
	"math/rand"
)

// Option customizes a single sort call.
// Applying N options costs O(N); later options override earlier ones.
type Option func(*options)

// options holds the resolved per-call knobs.
type options struct {
	// src drives quick sort pivot selection; nil means "fresh stream per call".
	src Source
}

// newOptions applies opts over the zero configuration.
func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// source returns the configured pivot source or a fresh per-call stream.
func (o options) source() Source {
	if o.src != nil {
		return o.src
	}

	return newCallRNG()
}

// WithSource installs a custom pivot source, e.g. a scripted one in tests.
// Panics on nil to surface programmer error early.
func WithSource(src Source) Option {
	if src == nil {
		panic("sorting: WithSource(nil)")
	}

	return func(o *options) {
		o.src = src
	}
}

// WithRand uses r as the pivot source. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sorting: WithRand(nil)")
	}

	return func(o *options) {
		o.src = r
	}
}

// WithSeed creates a deterministic pivot source from seed.
// The same seed and input always yield the same metric counts.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.src = rand.New(rand.NewSource(seed))
	}
}
