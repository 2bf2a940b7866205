package results

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/sortlab/sorting"
)

// TrialLog is an append-only JSON-lines sink holding one flat object per
// trial: the fixed columns and the metric keys side by side at the top level.
// When compressed, the stream is a single lz4 frame finished by Close.
// TrialLog is safe for concurrent use.
type TrialLog struct {
	mu     sync.Mutex
	enc    *json.Encoder
	buf    *bufio.Writer
	zw     *lz4.Writer
	closer io.Closer
	n      int
}

// NewTrialLog wraps w. Close must be called to flush buffered lines and, for
// compressed logs, the lz4 frame footer. Close does not close w.
func NewTrialLog(w io.Writer, compressed bool) *TrialLog {
	l := &TrialLog{}
	if compressed {
		l.zw = lz4.NewWriter(w)
		w = l.zw
	}
	l.buf = bufio.NewWriter(w)
	l.enc = json.NewEncoder(l.buf)

	return l
}

// CreateTrialLog creates (or truncates) the file at path and returns a log
// that owns it; Close also closes the file.
func CreateTrialLog(path string, compressed bool) (*TrialLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trial log: %w", err)
	}
	l := NewTrialLog(f, compressed)
	l.closer = f

	return l, nil
}

// Write appends one row.
func (l *TrialLog) Write(row Row) error {
	obj := make(map[string]any, 6+len(row.Metrics))
	for k, v := range row.Metrics {
		obj[k] = v
	}
	obj[ColAlgorithm] = row.Algorithm
	obj[ColCase] = row.Case
	obj[ColSize] = row.Size
	obj[ColTrial] = row.Trial
	obj[ColElapsed] = row.Elapsed.Seconds()
	obj[ColCPU] = row.CPUTime.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.Encode(obj); err != nil {
		return fmt.Errorf("trial log: %w", err)
	}
	l.n++

	return nil
}

// Len reports how many rows were written.
func (l *TrialLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.n
}

// Close flushes pending output and closes owned resources.
func (l *TrialLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.buf.Flush()
	if l.zw != nil {
		err = errors.Join(err, l.zw.Close())
	}
	if l.closer != nil {
		err = errors.Join(err, l.closer.Close())
	}

	return err
}

// ReadTrialLog decodes every row of a log written by TrialLog.
func ReadTrialLog(r io.Reader, compressed bool) ([]Row, error) {
	if compressed {
		r = lz4.NewReader(r)
	}

	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()

	var rows []Row
	for line := 1; ; line++ {
		var obj map[string]any
		err := dec.Decode(&obj)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: trial log line %d: %v", ErrMalformedRow, line, err)
		}

		row, err := decodeObject(obj)
		if err != nil {
			return nil, fmt.Errorf("trial log line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// OpenTrialLog reads the log file at path.
func OpenTrialLog(path string, compressed bool) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trial log: %w", err)
	}
	defer f.Close()

	return ReadTrialLog(f, compressed)
}

func decodeObject(obj map[string]any) (Row, error) {
	row := Row{Metrics: sorting.Record{}}
	for key, raw := range obj {
		if key == ColAlgorithm || key == ColCase {
			text, ok := raw.(string)
			if !ok {
				return Row{}, fmt.Errorf("%w: %q is not a string", ErrMalformedRow, key)
			}
			if key == ColAlgorithm {
				row.Algorithm = text
			} else {
				row.Case = text
			}

			continue
		}

		num, ok := raw.(json.Number)
		if !ok {
			return Row{}, fmt.Errorf("%w: %q is not a number", ErrMalformedRow, key)
		}
		switch key {
		case ColSize, ColTrial:
			v, err := num.Int64()
			if err != nil {
				return Row{}, fmt.Errorf("%w: %q: %v", ErrMalformedRow, key, err)
			}
			if key == ColSize {
				row.Size = int(v)
			} else {
				row.Trial = int(v)
			}
		case ColElapsed, ColCPU:
			f, err := num.Float64()
			if err != nil {
				return Row{}, fmt.Errorf("%w: %q: %v", ErrMalformedRow, key, err)
			}
			if key == ColElapsed {
				row.Elapsed = secondsToDuration(f)
			} else {
				row.CPUTime = secondsToDuration(f)
			}
		default:
			v, err := parseMetric(num.String())
			if err != nil {
				return Row{}, fmt.Errorf("%w: %q: %q", ErrMalformedRow, key, num)
			}
			row.Metrics[key] = v
		}
	}

	return row, nil
}
