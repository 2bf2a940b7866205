// Package results persists trial rows.
//
// A Row is one sort call: algorithm, case, size, repetition, wall-clock and
// CPU time, and the metrics record. Rows are stored two ways:
//
//   - WriteCSV / ReadCSV: the detail table, one line per trial, metric
//     columns in canonical order. Metrics an algorithm does not track are
//     empty cells and read back as absent, never as zero.
//   - TrialLog / ReadTrialLog: an append-only JSON-lines log written while an
//     experiment runs, optionally lz4-compressed, so partial results survive
//     an interrupted run.
//
// Decoding errors wrap ErrMalformedRow.
package results
