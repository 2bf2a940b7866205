// Package report turns trial rows into human-facing output: a self-contained
// HTML page of charts, terminal tables, and CSV/YAML summaries.
//
// Chart y axes switch to log scale when a column's largest per-trial value
// exceeds 1000, so linear and quadratic growth stay readable side by side.
package report
