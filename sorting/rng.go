// Package sorting - pivot randomness for quick sort.
//
// Goals:
//   - Injection: the pivot source is a capability passed per call, never a
//     package-level stream.
//   - Determinism on request: WithSeed / WithRand / WithSource pin down exact
//     partition traces; without them every call gets a fresh stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each call owns its source; do not
//     share one *rand.Rand between concurrent sorts.
package sorting

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// Source yields pivot offsets. Intn must return a value in [0, n) for n > 0.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// callSeq decorrelates default seeds of calls started within the same clock tick.
var callSeq atomic.Uint64

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64 finalizer. Small input changes produce well-spread outputs,
// so consecutive stream ids give independent-looking seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// newCallRNG returns a fresh, non-reproducible stream for a single call.
func newCallRNG() *rand.Rand {
	seed := DeriveSeed(time.Now().UnixNano(), callSeq.Add(1))

	return rand.New(rand.NewSource(seed))
}
