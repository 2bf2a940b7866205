package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sortlab/sorting"
)

// WriteCSV writes a header plus one line per row in Columns() order.
// Metrics a row does not report are written as empty cells.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cols := Columns()

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(cols))
	for i, row := range rows {
		record[0] = row.Algorithm
		record[1] = row.Case
		record[2] = strconv.Itoa(row.Size)
		record[3] = strconv.Itoa(row.Trial)
		record[4] = formatSeconds(row.Elapsed.Seconds())
		record[5] = formatSeconds(row.CPUTime.Seconds())
		for j, key := range cols[6:] {
			record[6+j] = ""
			if v, ok := row.Metrics.Get(key); ok {
				record[6+j] = strconv.FormatInt(v, 10)
			}
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. Columns are matched by header
// name, so files with fewer metric columns or a different order are accepted.
// Columns outside the fixed set are read as integer metrics; empty cells
// stay absent.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range []string{ColAlgorithm, ColCase, ColSize, ColTrial} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedRow, col)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
			}

			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		row, err := decodeRecord(header, rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func decodeRecord(header, rec []string) (Row, error) {
	row := Row{Metrics: sorting.Record{}}

	for i, col := range header {
		cell := rec[i]
		switch col {
		case ColAlgorithm:
			row.Algorithm = cell
		case ColCase:
			row.Case = cell
		case ColSize, ColTrial:
			n, err := strconv.Atoi(cell)
			if err != nil {
				return Row{}, fmt.Errorf("%w: column %q: %q", ErrMalformedRow, col, cell)
			}
			if col == ColSize {
				row.Size = n
			} else {
				row.Trial = n
			}
		case ColElapsed, ColCPU:
			if cell == "" {
				continue
			}
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return Row{}, fmt.Errorf("%w: column %q: %q", ErrMalformedRow, col, cell)
			}
			if col == ColElapsed {
				row.Elapsed = secondsToDuration(f)
			} else {
				row.CPUTime = secondsToDuration(f)
			}
		default:
			if cell == "" {
				continue
			}
			v, err := parseMetric(cell)
			if err != nil {
				return Row{}, fmt.Errorf("%w: column %q: %q", ErrMalformedRow, col, cell)
			}
			row.Metrics[col] = v
		}
	}

	return row, nil
}

// parseMetric accepts plain integers and integral floats ("12.0"), the form
// dataframe tools emit for integer columns containing blanks.
func parseMetric(cell string) (int64, error) {
	if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, ErrMalformedRow
	}

	return int64(f), nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
