package results

import (
	"errors"
	"time"

	"github.com/katalvlaran/sortlab/sorting"
)

// Fixed columns preceding the metric columns.
const (
	ColAlgorithm = "algorithm"
	ColCase      = "case"
	ColSize      = "size"
	ColTrial     = "trial"
	ColElapsed   = "elapsed_seconds"
	ColCPU       = "cpu_seconds"
)

// ErrMalformedRow is returned when a persisted row cannot be decoded.
var ErrMalformedRow = errors.New("results: malformed row")

// Row is the outcome of one trial: one sort call on one generated input.
type Row struct {
	Algorithm string
	Case      string
	Size      int
	Trial     int // 1-based repetition index
	Elapsed   time.Duration
	CPUTime   time.Duration
	Metrics   sorting.Record
}

// Metric returns the row's value for a metric key and whether it is present.
func (r Row) Metric(key string) (int64, bool) {
	return r.Metrics.Get(key)
}

// Value returns the numeric value of any numeric column: elapsed and CPU time
// in seconds, size, trial, or a metric. ok is false for absent metrics and
// for the text columns.
func (r Row) Value(column string) (float64, bool) {
	switch column {
	case ColElapsed:
		return r.Elapsed.Seconds(), true
	case ColCPU:
		return r.CPUTime.Seconds(), true
	case ColSize:
		return float64(r.Size), true
	case ColTrial:
		return float64(r.Trial), true
	case ColAlgorithm, ColCase:
		return 0, false
	}
	v, ok := r.Metrics.Get(column)

	return float64(v), ok
}

// Columns returns the tabular header: the fixed columns followed by every
// metric column in canonical order.
func Columns() []string {
	cols := []string{ColAlgorithm, ColCase, ColSize, ColTrial, ColElapsed, ColCPU}

	return append(cols, sorting.MetricColumns()...)
}

// ValueColumns returns the numeric columns aggregated per group:
// elapsed time, CPU time and every metric column.
func ValueColumns() []string {
	return append([]string{ColElapsed, ColCPU}, sorting.MetricColumns()...)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s*float64(time.Second) + 0.5)
}
