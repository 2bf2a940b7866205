package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/stats"
)

// Output file names written by Write.
const (
	DetailFile      = "detail.csv"
	SummaryCSVFile  = "summary.csv"
	SummaryYAMLFile = "summary.yaml"
	ChartsFile      = "charts.html"
)

// Write aggregates rows and writes every report file into dir, creating it
// if needed. It returns the paths written, in order.
func Write(dir string, rows []results.Row) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	groups := stats.Aggregate(rows)

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{DetailFile, func(w io.Writer) error { return results.WriteCSV(w, rows) }},
		{SummaryCSVFile, func(w io.Writer) error { return stats.WriteSummaryCSV(w, groups) }},
		{SummaryYAMLFile, func(w io.Writer) error { return WriteYAML(w, groups) }},
		{ChartsFile, func(w io.Writer) error { return Charts(rows, groups).Render(w) }},
	}

	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := writeFile(path, out.write); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}
