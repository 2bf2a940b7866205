package experiment

import (
	"errors"
	"sync"

	"github.com/katalvlaran/sortlab/results"
)

// Sink receives every completed trial row. Run serializes calls, so
// implementations need not be goroutine-safe.
type Sink interface {
	Write(row results.Row) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(results.Row) error

// Write calls f(row).
func (f SinkFunc) Write(row results.Row) error { return f(row) }

// Collector keeps rows in memory in arrival order.
type Collector struct {
	mu   sync.Mutex
	rows []results.Row
}

// Write appends row.
func (c *Collector) Write(row results.Row) error {
	c.mu.Lock()
	c.rows = append(c.rows, row)
	c.mu.Unlock()

	return nil
}

// Rows returns a copy of the collected rows.
func (c *Collector) Rows() []results.Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]results.Row, len(c.rows))
	copy(out, c.rows)

	return out
}

// MultiSink fans each row out to every sink; errors from all sinks are joined.
type MultiSink []Sink

// Write forwards row to each sink in order.
func (m MultiSink) Write(row results.Row) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(row); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
