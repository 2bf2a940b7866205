package sorting

// quickFrame is one pending sub-range on the explicit work-stack.
type quickFrame struct {
	lo, hi int // inclusive bounds
	depth  int // depth the equivalent recursive call would have
}

// quickSorter carries the working vector, pivot source and accumulator.
type quickSorter struct {
	v   []int
	src Source
	c   *counters
}

// QuickSort sorts a copy of seq with randomized-pivot quick sort (Lomuto scheme).
//
// Partition of v[lo..hi]:
//  1. Draw p uniformly from [lo, hi] and swap v[p] with v[hi] (one swap, even if p == hi).
//  2. Scan j = lo .. hi-1: one comparison each; every v[j] <= pivot is swapped
//     into the next low slot (one swap, even in place).
//  3. Swap the pivot into its resting slot (one swap).
//
// Sub-ranges are processed from an explicit stack in the same order a
// recursive implementation would visit them (left before right), so a
// scripted Source reproduces the recursive trace exactly. recursion_depth is
// the deepest frame that actually partitioned (length >= 2); the top frame is 1.
//
// The pivot source comes from WithSource / WithRand / WithSeed, or a fresh
// stream per call. Only the counts, never the output, depend on it.
//
// Complexity: O(n log n) expected, O(n²) worst case; stack O(log n) expected,
// O(n) worst case, held on the heap.
func QuickSort(seq []int, opts ...Option) ([]int, Record) {
	o := newOptions(opts...)
	qs := &quickSorter{v: cloneInts(seq), c: &counters{}}
	if len(qs.v) > 1 {
		qs.src = o.source()
		qs.run()
	}

	rec := qs.c.record()
	rec[MetricPartitionCalls] = qs.c.partitions

	return qs.v, rec
}

// run drains the work-stack starting from the whole vector.
func (qs *quickSorter) run() {
	stack := []quickFrame{{lo: 0, hi: len(qs.v) - 1, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.lo >= f.hi {
			continue
		}

		qs.c.observeDepth(f.depth)
		p := qs.partition(f.lo, f.hi)

		// Right is pushed first so the left range is handled next.
		stack = append(stack,
			quickFrame{lo: p + 1, hi: f.hi, depth: f.depth + 1},
			quickFrame{lo: f.lo, hi: p - 1, depth: f.depth + 1},
		)
	}
}

// partition rearranges v[lo..hi] around a random pivot and returns its final index.
func (qs *quickSorter) partition(lo, hi int) int {
	qs.c.partitions++

	p := lo + qs.src.Intn(hi-lo+1)
	qs.v[p], qs.v[hi] = qs.v[hi], qs.v[p]
	qs.c.swaps++

	pivot := qs.v[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		qs.c.comparisons++
		if qs.v[j] <= pivot {
			i++
			qs.v[i], qs.v[j] = qs.v[j], qs.v[i]
			qs.c.swaps++
		}
	}

	qs.v[i+1], qs.v[hi] = qs.v[hi], qs.v[i+1]
	qs.c.swaps++

	return i + 1
}
