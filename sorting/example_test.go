package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/sortlab/sorting"
)

// ExampleInsertionSort shows the counts of a small reversed-ish input.
// Every shift is a comparison and a swap; each key placement is one more swap.
func ExampleInsertionSort() {
	sorted, rec := sorting.InsertionSort([]int{5, 3, 4, 1, 2})

	fmt.Println(sorted)
	fmt.Println(rec[sorting.MetricComparisons], rec[sorting.MetricSwaps], rec[sorting.MetricRecursionDepth])
	// Output:
	// [1 2 3 4 5]
	// 10 12 0
}

// ExampleHeapSort prints the heap-specific counters next to the result.
func ExampleHeapSort() {
	sorted, rec := sorting.HeapSort([]int{4, 10, 3, 5, 1})

	fmt.Println(sorted)
	for _, k := range rec.Keys() {
		fmt.Printf("%s=%d\n", k, rec[k])
	}
	// Output:
	// [1 3 4 5 10]
	// comparisons=12
	// swaps=9
	// recursion_depth=3
	// heapify_calls=11
}

// ExampleQuickSort fixes the pivot stream with a seed so repeated runs report
// the same counts.
func ExampleQuickSort() {
	in := []int{9, 2, 7, 4, 4, 1}

	a, recA := sorting.QuickSort(in, sorting.WithSeed(42))
	_, recB := sorting.QuickSort(in, sorting.WithSeed(42))

	fmt.Println(a)
	fmt.Println(recA[sorting.MetricPartitionCalls] == recB[sorting.MetricPartitionCalls])
	fmt.Println(in) // untouched
	// Output:
	// [1 2 4 4 7 9]
	// true
	// [9 2 7 4 4 1]
}

// ExampleLookup drives an algorithm by its identifier, the way an experiment
// driver does.
func ExampleLookup() {
	fn, err := sorting.Lookup(sorting.SelectionSortName)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sorted, rec := fn([]int{3, 1, 2})
	fmt.Println(sorted, rec[sorting.MetricSwaps])

	_, err = sorting.Lookup("bogo_sort")
	fmt.Println(err)
	// Output:
	// [1 2 3] 2
	// sorting: unknown algorithm: "bogo_sort"
}
