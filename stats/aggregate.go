package stats

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/results"
)

// Summary holds the aggregate of one column within one group.
type Summary struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// Summarize computes the Summary of values.
func Summarize(values []float64) Summary {
	return Summary{
		Mean: Mean(values),
		Std:  SampleStdDev(values),
		Min:  Min(values),
		Max:  Max(values),
	}
}

// Key identifies a group.
type Key struct {
	Algorithm string
	Case      string
	Size      int
}

// Group aggregates every trial sharing a Key.
type Group struct {
	Key
	Count int

	// Columns maps a value column (see results.ValueColumns) to its summary.
	// Metrics absent from every row of the group are not present.
	Columns map[string]Summary
}

// Column returns the summary of col and whether the group has it.
func (g Group) Column(col string) (Summary, bool) {
	s, ok := g.Columns[col]

	return s, ok
}

// Aggregate groups rows by (algorithm, case, size), ordered by algorithm,
// then case (best, worst, average), then size.
//
// Within a group a metric is summarized over the rows that report it.
func Aggregate(rows []results.Row) []Group {
	buckets := make(map[Key][]results.Row)
	for _, row := range rows {
		k := Key{Algorithm: row.Algorithm, Case: row.Case, Size: row.Size}
		buckets[k] = append(buckets[k], row)
	}

	groups := make([]Group, 0, len(buckets))
	for k, members := range buckets {
		g := Group{Key: k, Count: len(members), Columns: make(map[string]Summary)}
		for _, col := range columnsOf(members) {
			values := Series(members, col)
			if len(values) > 0 {
				g.Columns[col] = Summarize(values)
			}
		}
		groups = append(groups, g)
	}

	slices.SortFunc(groups, func(a, b Group) int { return CompareKeys(a.Key, b.Key) })

	return groups
}

// CompareKeys orders keys by algorithm, case rank, case label, then size.
func CompareKeys(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.Algorithm, b.Algorithm),
		cmp.Compare(generator.Case(a.Case).Rank(), generator.Case(b.Case).Rank()),
		cmp.Compare(a.Case, b.Case),
		cmp.Compare(a.Size, b.Size),
	)
}

// Series extracts the per-trial values of column, skipping rows that do not
// report it.
func Series(rows []results.Row, column string) []float64 {
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := row.Value(column); ok {
			out = append(out, v)
		}
	}

	return out
}

// Columns returns every value column present in at least one group, in
// results.ValueColumns order followed by any extra metric names sorted.
func Columns(groups []Group) []string {
	present := make(map[string]bool)
	for _, g := range groups {
		for col := range g.Columns {
			present[col] = true
		}
	}

	return orderColumns(present)
}

func columnsOf(rows []results.Row) []string {
	present := map[string]bool{results.ColElapsed: true, results.ColCPU: true}
	for _, row := range rows {
		for key := range row.Metrics {
			present[key] = true
		}
	}

	return orderColumns(present)
}

func orderColumns(present map[string]bool) []string {
	out := make([]string, 0, len(present))
	known := make(map[string]bool)
	for _, col := range results.ValueColumns() {
		known[col] = true
		if present[col] {
			out = append(out, col)
		}
	}

	var extra []string
	for col := range present {
		if !known[col] {
			extra = append(extra, col)
		}
	}
	slices.Sort(extra)

	return append(out, extra...)
}
