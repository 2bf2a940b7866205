package report

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
	"github.com/katalvlaran/sortlab/stats"
)

// RenderTable writes a terminal table of column's group statistics:
// one line per (algorithm, case, size), sizes with thousands separators.
func RenderTable(w io.Writer, groups []stats.Group, column string) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(column)
	tbl.AppendHeader(table.Row{"algorithm", "case", "size", "trials", "mean", "std", "min", "max"})

	rows := 0
	for _, g := range groups {
		s, ok := g.Column(column)
		if !ok {
			continue
		}
		tbl.AppendRow(table.Row{
			g.Algorithm, g.Case, humanize.Comma(int64(g.Size)), g.Count,
			formatValue(column, s.Mean), formatValue(column, s.Std),
			formatValue(column, s.Min), formatValue(column, s.Max),
		})
		rows++
	}
	tbl.AppendFooter(table.Row{"", "", "groups", rows})
	tbl.Render()
}

// RenderRecord writes a single sort call's metrics as a two-column table.
func RenderRecord(w io.Writer, rec sorting.Record) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"metric", "value"})
	for _, key := range rec.Keys() {
		tbl.AppendRow(table.Row{key, humanize.Comma(rec[key])})
	}
	tbl.Render()
}

// formatValue renders time columns with SI prefixes and counters with
// thousands separators.
func formatValue(column string, v float64) string {
	switch column {
	case results.ColElapsed, results.ColCPU:
		if v == 0 {
			return "0 s"
		}

		return humanize.SIWithDigits(v, 3, "s")
	default:
		if v == float64(int64(v)) {
			return humanize.Comma(int64(v))
		}

		return humanize.CommafWithDigits(v, 2)
	}
}
