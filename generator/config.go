// SPDX-License-Identifier: MIT
// Package: sortlab/generator
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • rng = nil → a fresh stream per call, seeded from the clock and a call
//     counter (non-reproducible on purpose).

package generator

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// genConfig aggregates all knobs used by generators.
// It is passed by value; callers never see it.
type genConfig struct {
	// RNG for shuffles; nil means "fresh stream per call".
	rng *rand.Rand
}

// callSeq separates default seeds of calls made within one clock tick.
var callSeq atomic.Int64

// newGenConfig applies options in order; later options win.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present, else a local stream for this call only.
func rngFrom(cfg genConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	seed := time.Now().UnixNano() ^ (callSeq.Add(1) << 32)

	return rand.New(rand.NewSource(seed))
}
