package sorting

// heapSorter carries the working vector and the call's accumulator through
// the recursive heapify.
type heapSorter struct {
	v []int     // working copy, sorted in place
	c *counters // per-call accumulator
}

// HeapSort sorts a copy of seq with an in-place max-heap.
//
// Steps:
//  1. Build the heap bottom-up: heapify every internal node from n/2-1 down to 0.
//  2. For i = n-1 .. 1: swap the root with v[i] (one swap), shrink the heap to i
//     and heapify from the root.
//
// Metrics: comparisons (one per in-bounds child examined), swaps (real
// exchanges only), heapify_calls (every invocation, recursive ones included),
// recursion_depth (deepest heapify level; each top-level call starts at 1).
//
// Complexity: O(n log n) time, O(log n) stack, O(n) for the copy.
func HeapSort(seq []int, _ ...Option) ([]int, Record) {
	hs := &heapSorter{v: cloneInts(seq), c: &counters{}}
	n := len(hs.v)

	for i := n/2 - 1; i >= 0; i-- {
		hs.heapify(n, i, 1)
	}
	for i := n - 1; i > 0; i-- {
		hs.v[0], hs.v[i] = hs.v[i], hs.v[0]
		hs.c.swaps++
		hs.heapify(i, 0, 1)
	}

	rec := hs.c.record()
	rec[MetricHeapifyCalls] = hs.c.heapify

	return hs.v, rec
}

// heapify sifts v[i] down within the first n elements.
func (hs *heapSorter) heapify(n, i, depth int) {
	hs.c.heapify++
	hs.c.observeDepth(depth)

	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n {
		hs.c.comparisons++
		if hs.v[left] > hs.v[largest] {
			largest = left
		}
	}
	if right < n {
		hs.c.comparisons++
		if hs.v[right] > hs.v[largest] {
			largest = right
		}
	}

	if largest != i {
		hs.v[i], hs.v[largest] = hs.v[largest], hs.v[i]
		hs.c.swaps++
		hs.heapify(n, largest, depth+1)
	}
}
