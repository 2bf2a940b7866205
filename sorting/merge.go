package sorting

// mergeSorter holds the working vector, a scratch buffer of equal length and
// the call's accumulator.
type mergeSorter struct {
	v   []int
	buf []int
	c   *counters
}

// MergeSort sorts a copy of seq with top-down merge sort.
//
// The range is split at len/2 (the left half takes the floor), both halves are
// sorted recursively and then merged through a scratch buffer.
//
// Metrics:
//   - comparisons: one per pair of heads considered during a merge.
//   - swaps: one per element written to the merged output, tail copies included.
//   - recursion_depth: deepest call, leaves included; the top call is depth 1.
//
// Inputs of length 0 or 1 return immediately with all-zero counts.
//
// Complexity: Θ(n log n) time, O(n) scratch, O(log n) stack. The recursion is
// kept because its depth is bounded by ⌈log2 n⌉+1.
func MergeSort(seq []int, _ ...Option) ([]int, Record) {
	ms := &mergeSorter{v: cloneInts(seq), c: &counters{}}
	if len(ms.v) > 1 {
		ms.buf = make([]int, len(ms.v))
		ms.sort(0, len(ms.v), 1)
	}

	return ms.v, ms.c.record()
}

// sort orders v[lo:hi].
func (ms *mergeSorter) sort(lo, hi, depth int) {
	ms.c.observeDepth(depth)
	if hi-lo <= 1 {
		return
	}

	mid := lo + (hi-lo)/2
	ms.sort(lo, mid, depth+1)
	ms.sort(mid, hi, depth+1)
	ms.merge(lo, mid, hi)
}

// merge combines the sorted runs v[lo:mid] and v[mid:hi].
// Ties take the left element first, keeping the sort stable.
func (ms *mergeSorter) merge(lo, mid, hi int) {
	copy(ms.buf[lo:hi], ms.v[lo:hi])

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		ms.c.comparisons++
		if ms.buf[i] <= ms.buf[j] {
			ms.v[k] = ms.buf[i]
			i++
		} else {
			ms.v[k] = ms.buf[j]
			j++
		}
		ms.c.swaps++
		k++
	}
	for ; i < mid; i++ {
		ms.v[k] = ms.buf[i]
		ms.c.swaps++
		k++
	}
	for ; j < hi; j++ {
		ms.v[k] = ms.buf[j]
		ms.c.swaps++
		k++
	}
}
