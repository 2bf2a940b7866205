// Package sortlab is an instrumented sorting laboratory: five classic
// comparison sorts that count their own work, input generators for best,
// worst and average cases, and an experiment driver that measures them.
//
// What is in the box?
//
//	• Instrumented sorts: heap, insertion, merge, quick (random pivot), selection
//	• Metrics per call: comparisons, swaps, recursion depth, heapify and partition calls
//	• Inputs: best / worst / average case per algorithm, seedable shuffles
//	• Experiments: repetitions over size ladders, wall-clock and CPU time per trial
//	• Reports: CSV and YAML summaries, terminal tables, HTML charts
//
// Packages:
//
//	sorting/       — the algorithms, the metrics Record, pivot sources
//	generator/     — best, worst and average case inputs
//	results/       — trial rows: CSV table and JSON-lines trial log
//	experiment/    — the Plan and the Runner that executes it
//	stats/         — mean / std / min / max aggregation per group
//	report/        — charts, tables and summary files
//	config/        — YAML + environment configuration
//	observability/ — structured logging and Prometheus metrics
//	cmd/sortbench/ — the command-line tool
//
// Quick example:
//
//	out, rec := sorting.InsertionSort([]int{5, 3, 4, 1, 2})
//	// out == [1 2 3 4 5], rec["comparisons"] == 10
//
//	go install github.com/katalvlaran/sortlab/cmd/sortbench@latest
package sortlab
