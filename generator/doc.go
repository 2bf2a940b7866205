// Package generator produces the integer inputs fed to the sorting benchmarks:
// best, worst and average cases, parameterized by algorithm and size.
//
// The package offers the following components:
//
//   - Case generators:
//     – BestCase(algo, n):   [0..n-1] for every algorithm.
//     – WorstCase(algo, n):  [n..1] for insertion/selection/merge/heap sort,
//     [0..n-1] for quick sort and unknown identifiers.
//     – AverageCase(n, ...): uniform random permutation of [0..n-1].
//     – Generate(case, algo, n, ...): dispatch by Case.
//   - Case labels:
//     – Best, Worst, Average; ParseCase also accepts "melhor", "pior", "medio".
//   - Options:
//     – WithSeed(seed):  deterministic shuffles.
//     – WithRand(r):     caller-owned RNG stream.
//
// Guarantees:
//
//   - n < 0 fails with ErrNegativeSize; no partial sequence is returned.
//   - Every call returns a new slice the caller owns.
//   - No dependency on the sorting engine, no I/O, no logging.
//
// Example:
//
//	in, err := generator.Generate(generator.Worst, "merge_sort", 5)
//	// in == [5 4 3 2 1]
package generator
