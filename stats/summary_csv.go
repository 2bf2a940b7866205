package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Summary column suffixes, in output order.
var statSuffixes = []string{"mean", "std", "min", "max"}

// WriteSummaryCSV writes one line per group:
// algorithm, case, size, count, then <col>_mean, <col>_std, <col>_min,
// <col>_max for every column present in any group. Columns a group lacks are
// left empty.
func WriteSummaryCSV(w io.Writer, groups []Group) error {
	cols := Columns(groups)

	header := []string{"algorithm", "case", "size", "count"}
	for _, col := range cols {
		for _, suffix := range statSuffixes {
			header = append(header, col+"_"+suffix)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}

	for _, g := range groups {
		record := []string{g.Algorithm, g.Case, strconv.Itoa(g.Size), strconv.Itoa(g.Count)}
		for _, col := range cols {
			s, ok := g.Columns[col]
			if !ok {
				record = append(record, "", "", "", "")

				continue
			}
			record = append(record, formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min), formatFloat(s.Max))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
