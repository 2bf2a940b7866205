// SPDX-License-Identifier: MIT
// Package: sortlab/generator
//
// generator.go — best / worst / average case inputs.
//
// Contract:
//   • Every generator returns a fresh slice of exactly n elements, or
//     (nil, error) when n < 0. Length 0 yields an empty, non-nil slice.
//   • BestCase and WorstCase are pure functions of (algorithm, n).
//   • AverageCase is reproducible only when seeded (WithSeed / WithRand).

package generator

// BestCase returns the ascending sequence [0, 1, ..., n-1] for every algorithm.
//
// An already-sorted input is the commonly cited best case for all five
// algorithms, including randomized quick sort. It is a simplification, not a
// rigorous best case for every variant.
//
// Complexity: O(n).
func BestCase(algorithm string, n int) ([]int, error) {
	_ = algorithm // same input for every algorithm
	if err := validateSize(MethodBestCase, n); err != nil {
		return nil, err
	}

	return ascending(n), nil
}

// WorstCase returns the input that elicits an algorithm's least favourable
// behaviour:
//   - insertion_sort, selection_sort, merge_sort, heap_sort: [n, n-1, ..., 1].
//   - quick_sort: [0, 1, ..., n-1], the classical worst case of a fixed
//     endpoint pivot. The engine picks pivots at random, so this only
//     approximates a worst case; it is kept for comparability with earlier
//     recorded results.
//   - any other identifier: [0, 1, ..., n-1] (lenient fallback, no error).
//
// Complexity: O(n).
func WorstCase(algorithm string, n int) ([]int, error) {
	if err := validateSize(MethodWorstCase, n); err != nil {
		return nil, err
	}
	if descendingWorst[algorithm] {
		return descending(n), nil
	}

	return ascending(n), nil
}

// AverageCase returns a uniformly random permutation of [0, 1, ..., n-1],
// independent of the algorithm. Each unseeded call draws a fresh shuffle.
//
// Complexity: O(n) time, one allocation.
func AverageCase(n int, opts ...Option) ([]int, error) {
	if err := validateSize(MethodAverageCase, n); err != nil {
		return nil, err
	}

	cfg := newGenConfig(opts...)
	out := ascending(n)
	shuffleInPlace(out, rngFrom(cfg))

	return out, nil
}

// Generate dispatches to the generator for c.
// Options only affect the Average case.
func Generate(c Case, algorithm string, n int, opts ...Option) ([]int, error) {
	switch c {
	case Best:
		return BestCase(algorithm, n)
	case Worst:
		return WorstCase(algorithm, n)
	case Average:
		return AverageCase(n, opts...)
	default:
		return nil, generatorErrorf(MethodGenerate, ErrUnknownCase, "case %q", string(c))
	}
}
