// SPDX-License-Identifier: MIT
// Package: sortlab/generator
//
// sequences.go — shared sequence primitives.
//
// Contract:
//   • Pure helpers, no global state; callers validate n beforehand.
//   • O(n) time, exactly one allocation of length n.

package generator

import (
	"math/rand"
)

// ascending returns [0, 1, ..., n-1].
func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// descending returns [n, n-1, ..., 1].
func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out
}

// shuffleInPlace performs a Fisher–Yates shuffle of a using rng.
// Every permutation is equally likely for a uniform rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// validateSize ensures n ≥ MinSize, wrapping ErrNegativeSize with method context.
func validateSize(method string, n int) error {
	if n < MinSize {
		return generatorErrorf(method, ErrNegativeSize, "size must be ≥ %d, got %d", MinSize, n)
	}

	return nil
}
