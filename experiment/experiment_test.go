package experiment_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/observability"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

// stepClock advances by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	var ticks atomic.Int64
	base := time.Unix(0, 0)

	return func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * step)
	}
}

func smallPlan() experiment.Plan {
	return experiment.Plan{
		Algorithms:  []string{sorting.QuickSortName, sorting.InsertionSortName},
		Cases:       generator.Cases(),
		LargeSizes:  []int{0, 1, 16},
		SmallSizes:  []int{5, 8},
		Quadratic:   []string{sorting.InsertionSortName},
		Repetitions: 2,
		Seed:        99,
		Workers:     1,
		Verify:      true,
	}
}

func TestDefaultPlan(t *testing.T) {
	t.Parallel()

	p := experiment.DefaultPlan()
	require.NoError(t, p.Validate())
	assert.Equal(t, 20, p.Repetitions)
	assert.Equal(t, 1048576, p.SizesFor(sorting.HeapSortName)[10])
	assert.Equal(t, 50000, p.SizesFor(sorting.SelectionSortName)[9])
	assert.Len(t, p.Trials(), 3*3*11*20+2*3*10*20)
}

func TestPlan_TrialsOrder(t *testing.T) {
	t.Parallel()

	trials := smallPlan().Trials()
	require.Len(t, trials, 3*3*2+3*2*2)

	first := trials[0]
	assert.Equal(t, experiment.Trial{Index: 0, Algorithm: sorting.QuickSortName, Case: generator.Best, Size: 0, Repetition: 1}, first)
	assert.Equal(t, 2, trials[1].Repetition)
	assert.Equal(t, 1, trials[2].Size)

	last := trials[len(trials)-1]
	assert.Equal(t, sorting.InsertionSortName, last.Algorithm)
	assert.Equal(t, generator.Average, last.Case)
	assert.Equal(t, 8, last.Size)
	for i, tr := range trials {
		assert.Equal(t, i, tr.Index)
	}
}

func TestPlan_Validate(t *testing.T) {
	t.Parallel()

	mutate := func(f func(*experiment.Plan)) experiment.Plan {
		p := smallPlan()
		f(&p)

		return p
	}

	tests := []struct {
		name string
		plan experiment.Plan
		want error
	}{
		{"no algorithms", mutate(func(p *experiment.Plan) { p.Algorithms = nil }), experiment.ErrEmptyPlan},
		{"no cases", mutate(func(p *experiment.Plan) { p.Cases = nil }), experiment.ErrEmptyPlan},
		{"no sizes", mutate(func(p *experiment.Plan) { p.SmallSizes = nil }), experiment.ErrEmptyPlan},
		{"zero reps", mutate(func(p *experiment.Plan) { p.Repetitions = 0 }), experiment.ErrBadRepetitions},
		{"negative workers", mutate(func(p *experiment.Plan) { p.Workers = -1 }), experiment.ErrBadWorkers},
		{"unknown algorithm", mutate(func(p *experiment.Plan) { p.Algorithms = []string{"bogo_sort"} }), sorting.ErrUnknownAlgorithm},
		{"negative size", mutate(func(p *experiment.Plan) { p.LargeSizes = []int{-1} }), generator.ErrNegativeSize},
		{"alias case", mutate(func(p *experiment.Plan) { p.Cases = []generator.Case{"pior"} }), generator.ErrUnknownCase},
	}
	for _, tc := range tests {
		assert.ErrorIs(t, tc.plan.Validate(), tc.want, tc.name)
	}
}

func TestRunner_RunSequential(t *testing.T) {
	t.Parallel()

	var cpu atomic.Int64
	tel := observability.NewTelemetry()
	runner := experiment.NewRunner(
		experiment.WithClock(stepClock(time.Millisecond)),
		experiment.WithCPUClock(func() time.Duration { return time.Duration(cpu.Add(int64(time.Microsecond))) }),
		experiment.WithTelemetry(tel),
	)

	var sink experiment.Collector
	summary, err := runner.Run(context.Background(), smallPlan(), &sink)
	require.NoError(t, err)

	rows := sink.Rows()
	require.Len(t, rows, len(smallPlan().Trials()))
	assert.Equal(t, len(rows), summary.Trials)
	assert.Equal(t, time.Duration(len(rows))*time.Millisecond, summary.SortTime)

	for i, tr := range smallPlan().Trials() {
		row := rows[i]
		assert.Equal(t, tr.Algorithm, row.Algorithm)
		assert.Equal(t, tr.Case.String(), row.Case)
		assert.Equal(t, tr.Size, row.Size)
		assert.Equal(t, tr.Repetition, row.Trial)
		assert.Equal(t, time.Millisecond, row.Elapsed)
		assert.Equal(t, time.Microsecond, row.CPUTime)
	}

	// Best-case insertion sort is input-determined; the row must match a direct call.
	in, err := generator.BestCase(sorting.InsertionSortName, 8)
	require.NoError(t, err)
	_, want := sorting.InsertionSort(in)
	for _, row := range rows {
		if row.Algorithm == sorting.InsertionSortName && row.Case == "best" && row.Size == 8 {
			assert.Equal(t, want, row.Metrics)
		}
	}
}

func rowKey(r results.Row) string {
	return fmt.Sprintf("%s/%s/%d/%d", r.Algorithm, r.Case, r.Size, r.Trial)
}

func metricsByKey(rows []results.Row) map[string]sorting.Record {
	out := make(map[string]sorting.Record, len(rows))
	for _, r := range rows {
		out[rowKey(r)] = r.Metrics
	}

	return out
}

func TestRunner_SeedReproducibleAcrossWorkers(t *testing.T) {
	t.Parallel()

	plan := smallPlan()
	var seq experiment.Collector
	_, err := experiment.NewRunner().Run(context.Background(), plan, &seq)
	require.NoError(t, err)

	plan.Workers = 4
	var par experiment.Collector
	_, err = experiment.NewRunner().Run(context.Background(), plan, &par)
	require.NoError(t, err)

	got := par.Rows()
	sort.Slice(got, func(i, j int) bool { return rowKey(got[i]) < rowKey(got[j]) })
	require.Len(t, got, len(seq.Rows()))
	assert.Equal(t, metricsByKey(seq.Rows()), metricsByKey(got))
}

func TestRunner_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sink experiment.Collector
	_, err := experiment.NewRunner().Run(ctx, smallPlan(), &sink)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sink.Rows())
}

func TestRunner_StopsOnSinkError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	calls := 0
	sink := experiment.SinkFunc(func(results.Row) error {
		calls++
		if calls == 3 {
			return boom
		}

		return nil
	})

	summary, err := experiment.NewRunner().Run(context.Background(), smallPlan(), sink)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, summary.Trials)
}

func TestRunner_InvalidPlan(t *testing.T) {
	t.Parallel()

	_, err := experiment.NewRunner().Run(context.Background(), experiment.Plan{}, &experiment.Collector{})
	require.ErrorIs(t, err, experiment.ErrEmptyPlan)
}

func TestMultiSink(t *testing.T) {
	t.Parallel()

	var a, b experiment.Collector
	failing := experiment.SinkFunc(func(results.Row) error { return errors.New("nope") })

	err := experiment.MultiSink{&a, failing, &b}.Write(results.Row{Algorithm: "x"})
	require.Error(t, err)
	assert.Len(t, a.Rows(), 1)
	assert.Len(t, b.Rows(), 1)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { experiment.WithLogger(nil) })
	assert.Panics(t, func() { experiment.WithTelemetry(nil) })
	assert.Panics(t, func() { experiment.WithClock(nil) })
	assert.Panics(t, func() { experiment.WithCPUClock(nil) })
}
