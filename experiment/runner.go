package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/observability"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

// Seed streams derived per trial from the plan seed.
const (
	streamInput uint64 = iota + 1
	streamPivot
)

// Runner executes plans. A Runner is stateless between Run calls and may be
// reused.
type Runner struct {
	logger    *slog.Logger
	telemetry *observability.Telemetry
	now       func() time.Time
	cpu       func() time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger routes progress logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}

	return func(r *Runner) { r.logger = l }
}

// WithTelemetry records every completed trial in t. Panics on nil.
func WithTelemetry(t *observability.Telemetry) Option {
	if t == nil {
		panic("experiment: WithTelemetry(nil)")
	}

	return func(r *Runner) { r.telemetry = t }
}

// WithClock replaces the wall clock used to time sort calls. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("experiment: WithClock(nil)")
	}

	return func(r *Runner) { r.now = now }
}

// WithCPUClock replaces the process CPU time reader. Panics on nil.
func WithCPUClock(cpu func() time.Duration) Option {
	if cpu == nil {
		panic("experiment: WithCPUClock(nil)")
	}

	return func(r *Runner) { r.cpu = cpu }
}

// NewRunner returns a Runner that logs nowhere, times with time.Now and reads
// process user CPU time from the operating system.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: observability.Discard(),
		now:    time.Now,
		cpu:    processUserTime,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Summary describes a completed (or interrupted) run.
type Summary struct {
	Trials   int           // rows handed to the sink
	Wall     time.Duration // total wall-clock time of Run
	SortTime time.Duration // sum of per-trial elapsed time
}

// Run executes every trial of plan and hands each row to sink.
//
// CPU time is the process-wide user time delta around the sort call, so with
// Workers > 1 it includes concurrently running trials.
//
// Returns the first trial, sink or verification error, or ctx.Err() when the
// context is cancelled; trials already completed have been written.
func (r *Runner) Run(ctx context.Context, plan Plan, sink Sink) (Summary, error) {
	if err := plan.Validate(); err != nil {
		return Summary{}, err
	}

	start := r.now()
	trials := plan.Trials()
	r.logger.InfoContext(ctx, "experiment started",
		slog.Int("trials", len(trials)),
		slog.Int("workers", max(plan.Workers, 1)),
		slog.Int64("seed", plan.Seed))

	var (
		mu      sync.Mutex
		summary Summary
	)
	emit := func(row results.Row) error {
		mu.Lock()
		defer mu.Unlock()

		if err := sink.Write(row); err != nil {
			return fmt.Errorf("sink: %w", err)
		}
		summary.Trials++
		summary.SortTime += row.Elapsed
		r.telemetry.ObserveTrial(row)

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(plan.Workers, 1))

	for _, trial := range trials {
		if gctx.Err() != nil {
			break
		}
		if trial.Repetition == 1 {
			r.logger.InfoContext(ctx, "block",
				slog.String("algorithm", trial.Algorithm),
				slog.String("case", trial.Case.String()),
				slog.Int("size", trial.Size))
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := r.runTrial(gctx, plan, trial)
			if err != nil {
				return err
			}

			return emit(row)
		})
	}

	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}

	summary.Wall = r.now().Sub(start)
	if err != nil {
		r.logger.WarnContext(ctx, "experiment stopped",
			slog.Int("completed", summary.Trials), slog.Any("error", err))

		return summary, err
	}

	r.logger.InfoContext(ctx, "experiment finished",
		slog.Int("trials", summary.Trials),
		slog.Duration("wall", summary.Wall))

	return summary, nil
}

// runTrial generates the input, times one sort call and builds its row.
func (r *Runner) runTrial(ctx context.Context, plan Plan, trial Trial) (results.Row, error) {
	var (
		genOpts  []generator.Option
		sortOpts []sorting.Option
	)
	if plan.Seed != 0 {
		ts := sorting.DeriveSeed(plan.Seed, uint64(trial.Index))
		genOpts = append(genOpts, generator.WithSeed(sorting.DeriveSeed(ts, streamInput)))
		sortOpts = append(sortOpts, sorting.WithSeed(sorting.DeriveSeed(ts, streamPivot)))
	}

	input, err := generator.Generate(trial.Case, trial.Algorithm, trial.Size, genOpts...)
	if err != nil {
		return results.Row{}, err
	}
	sortFn, err := sorting.Lookup(trial.Algorithm)
	if err != nil {
		return results.Row{}, err
	}

	cpu0 := r.cpu()
	t0 := r.now()
	out, rec := sortFn(input, sortOpts...)
	elapsed := r.now().Sub(t0)
	cpu := r.cpu() - cpu0

	if plan.Verify && !sorting.IsSorted(out) {
		return results.Row{}, fmt.Errorf("%w: %s/%s n=%d trial %d",
			ErrUnsorted, trial.Algorithm, trial.Case, trial.Size, trial.Repetition)
	}

	row := results.Row{
		Algorithm: trial.Algorithm,
		Case:      trial.Case.String(),
		Size:      trial.Size,
		Trial:     trial.Repetition,
		Elapsed:   elapsed,
		CPUTime:   cpu,
		Metrics:   rec,
	}

	tctx := observability.ContextWithAttrs(ctx,
		slog.String("algorithm", row.Algorithm),
		slog.String("case", row.Case),
		slog.Int("size", row.Size))
	r.logger.DebugContext(tctx, "trial done",
		slog.Int("trial", row.Trial),
		slog.Duration("elapsed", elapsed),
		slog.Int64("comparisons", rec[sorting.MetricComparisons]))

	return row, nil
}
