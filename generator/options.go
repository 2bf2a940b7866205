// SPDX-License-Identifier: MIT
// Package: sortlab/generator
//
// options.go — functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand;
//     without either, AverageCase draws from a fresh clock-seeded stream.

package generator

import (
	"math/rand"
)

// Option customizes a generator call by mutating a genConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithRand provides an explicit RNG for AverageCase.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and reproducible experiments to lock shuffles.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
