// Package sorting implements five classic in-memory sorting algorithms,
// each instrumented with operation counters for empirical complexity analysis.
//
// What:
//
//   - HeapSort:      bottom-up max-heap build + repeated root extraction.
//   - InsertionSort: shift-based insertion, final placement always counted.
//   - MergeSort:     top-down split at len/2, merge through a scratch buffer.
//   - QuickSort:     randomized Lomuto partition over an explicit work-stack.
//   - SelectionSort: minimum selection, swaps counted only when they happen.
//
// Every algorithm has the same shape (SortFunc):
//
//	sorted, rec := sorting.HeapSort(input)
//
// The input is copied, never modified; rec is a fresh Record owned by the
// caller. Lengths 0 and 1 are already sorted and cost nothing.
//
// Metrics (Record keys):
//
//   - comparisons, swaps, recursion_depth — every algorithm.
//   - heapify_calls                      — heap sort only.
//   - partition_calls                    — quick sort only.
//
// A key an algorithm does not track is absent from its Record, so tabular
// consumers can render it as missing rather than zero.
//
// Determinism:
//
//   - Heap, insertion, merge and selection sort return identical output and
//     identical counts for identical input.
//   - QuickSort output is always the same; its counts depend on the pivot
//     Source. Use WithSeed, WithRand or WithSource to fix them.
//
// Complexity:
//
//   - HeapSort:      O(n log n) time, O(log n) stack.
//   - InsertionSort: O(n²) time (O(n) sorted), O(1) extra.
//   - MergeSort:     Θ(n log n) time, O(n) scratch, O(log n) stack.
//   - QuickSort:     O(n log n) expected, O(n²) worst; heap-allocated stack.
//   - SelectionSort: Θ(n²) comparisons, ≤ n-1 swaps.
//
// Errors:
//
//   - ErrUnknownAlgorithm  Lookup received an unregistered identifier.
//
// The package performs no I/O and no logging; nothing is shared between calls.
package sorting
