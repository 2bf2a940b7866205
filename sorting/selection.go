package sorting

// SelectionSort sorts a copy of seq by repeated minimum selection.
//
// Each candidate scanned in the unsorted remainder is one comparison. A swap
// is counted only when a strictly smaller element was found at another index;
// no-op swaps are neither performed nor counted.
//
// recursion_depth is always 0.
//
// Complexity: Θ(n²) comparisons, at most n-1 swaps; O(1) extra space.
func SelectionSort(seq []int, _ ...Option) ([]int, Record) {
	v := cloneInts(seq)
	c := &counters{}
	n := len(v)

	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			c.comparisons++
			if v[j] < v[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			v[i], v[minIdx] = v[minIdx], v[i]
			c.swaps++
		}
	}

	return v, c.record()
}
