// Shared constants for the case generators: method names and algorithm identifiers.

package generator

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBestCase is the canonical name for the BestCase generator.
	MethodBestCase = "BestCase"
	// MethodWorstCase is the canonical name for the WorstCase generator.
	MethodWorstCase = "WorstCase"
	// MethodAverageCase is the canonical name for the AverageCase generator.
	MethodAverageCase = "AverageCase"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
	// MethodParseCase is the canonical name for ParseCase.
	MethodParseCase = "ParseCase"
)

//-----------------------------------------------------------------------------
// Algorithm identifiers
//   The generator only needs to recognise them; it never calls the algorithms.
//-----------------------------------------------------------------------------

const (
	algoHeap      = "heap_sort"
	algoInsertion = "insertion_sort"
	algoMerge     = "merge_sort"
	algoQuick     = "quick_sort"
	algoSelection = "selection_sort"
)

// descendingWorst lists the algorithms whose worst case is a strictly
// descending input. Quick sort and unknown identifiers fall back to ascending.
var descendingWorst = map[string]bool{
	algoInsertion: true,
	algoSelection: true,
	algoMerge:     true,
	algoHeap:      true,
}

// MinSize is the smallest valid sequence length.
const MinSize = 0
