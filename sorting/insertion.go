package sorting

// InsertionSort sorts a copy of seq by insertion.
//
// For each key v[i], i >= 1, larger predecessors are shifted right one slot at
// a time; each shift is one comparison and one swap. The test that stops the
// scan (an element not greater than the key) is one comparison. Placing the
// key is always one swap, even when it does not move.
//
// recursion_depth is always 0.
//
// Complexity: O(n²) worst case, O(n) on sorted input; O(1) extra space.
func InsertionSort(seq []int, _ ...Option) ([]int, Record) {
	v := cloneInts(seq)
	c := &counters{}

	for i := 1; i < len(v); i++ {
		key := v[i]
		j := i - 1
		for j >= 0 {
			c.comparisons++
			if v[j] <= key {
				break
			}
			v[j+1] = v[j]
			c.swaps++
			j--
		}
		v[j+1] = key
		c.swaps++
	}

	return v, c.record()
}
