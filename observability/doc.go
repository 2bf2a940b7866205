// Package observability builds the structured logger and the Prometheus
// instruments used by the experiment driver and the CLI.
//
// The sorting, generator, results and stats packages never log; only the
// driver and the commands do.
package observability
