// Package sorting defines the metrics record, algorithm identifiers and the
// uniform call contract shared by every instrumented sort.
package sorting

import (
	"errors"
)

// Metric keys reported in a Record.
const (
	// MetricComparisons counts element-vs-element ordering tests.
	MetricComparisons = "comparisons"

	// MetricSwaps counts element relocations. Insertion sort also counts the
	// final key placement; merge sort counts every element written to output.
	MetricSwaps = "swaps"

	// MetricRecursionDepth is the deepest nesting of recursive calls (top call = 1).
	// Iterative algorithms always report 0.
	MetricRecursionDepth = "recursion_depth"

	// MetricHeapifyCalls counts heapify invocations (heap sort only).
	MetricHeapifyCalls = "heapify_calls"

	// MetricPartitionCalls counts partition invocations (quick sort only).
	MetricPartitionCalls = "partition_calls"
)

// metricColumns is the canonical column order of all known metrics.
var metricColumns = []string{
	MetricComparisons,
	MetricSwaps,
	MetricRecursionDepth,
	MetricHeapifyCalls,
	MetricPartitionCalls,
}

// Algorithm identifiers accepted by Lookup.
const (
	HeapSortName      = "heap_sort"
	InsertionSortName = "insertion_sort"
	MergeSortName     = "merge_sort"
	QuickSortName     = "quick_sort"
	SelectionSortName = "selection_sort"
)

var (
	// ErrUnknownAlgorithm is returned by Lookup for an unregistered identifier.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// SortFunc is the uniform entry point of every algorithm.
// It returns a sorted copy of seq together with a freshly built Record;
// seq itself is never modified. Options that an algorithm does not consume
// are ignored.
type SortFunc func(seq []int, opts ...Option) ([]int, Record)

// Record maps metric name to its final count for one sort call.
// Keys that an algorithm does not track are absent, not zero.
type Record map[string]int64

// Get returns the value of key and whether the algorithm reported it.
func (r Record) Get(key string) (int64, bool) {
	v, ok := r[key]

	return v, ok
}

// Keys returns the present metric keys in canonical column order.
// Unknown keys (not produced by this package) are appended in no particular order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	seen := make(map[string]bool, len(r))
	for _, k := range metricColumns {
		if _, ok := r[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for k := range r {
		if !seen[k] {
			keys = append(keys, k)
		}
	}

	return keys
}

// MetricColumns returns every metric key this package can emit, in the
// column order used for tabular output.
func MetricColumns() []string {
	out := make([]string, len(metricColumns))
	copy(out, metricColumns)

	return out
}

// counters is the mutable accumulator owned by exactly one sort call.
// It is threaded by pointer through recursive helpers and converted into a
// Record once the call completes.
type counters struct {
	comparisons int64
	swaps       int64
	maxDepth    int64
	heapify     int64
	partitions  int64
}

// observeDepth raises maxDepth to depth if it is deeper than any seen so far.
func (c *counters) observeDepth(depth int) {
	if d := int64(depth); d > c.maxDepth {
		c.maxDepth = d
	}
}

// record builds the base Record shared by all algorithms.
func (c *counters) record() Record {
	return Record{
		MetricComparisons:    c.comparisons,
		MetricSwaps:          c.swaps,
		MetricRecursionDepth: c.maxDepth,
	}
}

// cloneInts returns an independent copy of seq (never nil).
func cloneInts(seq []int) []int {
	out := make([]int, len(seq))
	copy(out, seq)

	return out
}
