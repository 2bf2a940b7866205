package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

const metricsNamespace = "sortbench"

// durationBuckets span a microsecond-scale sort of a tiny input up to the
// multi-minute quadratic runs on the largest sizes.
var durationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 14)

// Telemetry holds the experiment's Prometheus instruments on a private
// registry, so several instances never conflict.
type Telemetry struct {
	registry    *prometheus.Registry
	trials      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	comparisons *prometheus.CounterVec
}

// NewTelemetry creates and registers the instruments.
func NewTelemetry() *Telemetry {
	t := &Telemetry{
		registry: prometheus.NewRegistry(),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "trials_total",
			Help:      "Completed sort trials.",
		}, []string{"algorithm", "case"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock duration of one sort call.",
			Buckets:   durationBuckets,
		}, []string{"algorithm", "case"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "comparisons_total",
			Help:      "Element comparisons performed across all trials.",
		}, []string{"algorithm"}),
	}

	t.registry.MustRegister(t.trials, t.duration, t.comparisons)

	return t
}

// ObserveTrial records one completed trial. A nil Telemetry is a no-op.
func (t *Telemetry) ObserveTrial(row results.Row) {
	if t == nil {
		return
	}

	t.trials.WithLabelValues(row.Algorithm, row.Case).Inc()
	t.duration.WithLabelValues(row.Algorithm, row.Case).Observe(row.Elapsed.Seconds())
	if c, ok := row.Metrics.Get(sorting.MetricComparisons); ok {
		t.comparisons.WithLabelValues(row.Algorithm).Add(float64(c))
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// Handler serves the /metrics scrape endpoint.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}
