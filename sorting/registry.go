package sorting

import (
	"fmt"
)

// registry maps algorithm identifiers to their entry points.
var registry = map[string]SortFunc{
	QuickSortName:     QuickSort,
	HeapSortName:      HeapSort,
	MergeSortName:     MergeSort,
	InsertionSortName: InsertionSort,
	SelectionSortName: SelectionSort,
}

// names fixes the iteration order reported by Names.
var names = []string{
	QuickSortName,
	HeapSortName,
	MergeSortName,
	InsertionSortName,
	SelectionSortName,
}

// Lookup returns the entry point registered under name.
// Unknown names yield an error wrapping ErrUnknownAlgorithm.
func Lookup(name string) (SortFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return fn, nil
}

// Names returns all registered identifiers in a stable order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted(seq []int) bool {
	for i := len(seq) - 1; i > 0; i-- {
		if seq[i] < seq[i-1] {
			return false
		}
	}

	return true
}
