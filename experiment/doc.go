// Package experiment runs the benchmark grid.
//
// A Plan lists algorithms, cases, sizes and repetitions. Runner.Run walks the
// grid in algorithm → case → size → repetition order; for each trial it
// generates a fresh input, reads the process user CPU time, times one sort
// call with the monotonic clock, and hands a results.Row to a Sink.
//
// With a non-zero Plan.Seed every shuffle and pivot choice is derived from the
// seed and the trial index, so metric counts are reproducible across runs and
// independent of the worker count. Timings never are.
//
// Concurrency: Workers > 1 runs trials in parallel, each with its own input
// and record; sink writes stay serialized. Row arrival order is then not
// guaranteed.
package experiment
