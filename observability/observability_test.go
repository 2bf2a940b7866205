package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/observability"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

func TestNewLogger_JSONCarriesServiceAndContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := observability.NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	ctx := observability.ContextWithAttrs(context.Background(), slog.String("algorithm", "heap_sort"))
	ctx = observability.ContextWithAttrs(ctx, slog.Int("size", 16))
	logger.WithGroup("trial").DebugContext(ctx, "done", slog.Int("n", 1))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "sortbench", record["service"])
	assert.Equal(t, "done", record["msg"])
	assert.NotNil(t, record["trial"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := observability.NewLogger(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "service=sortbench")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLogger_Errors(t *testing.T) {
	t.Parallel()

	_, err := observability.NewLogger(io.Discard, "loud", "text")
	require.ErrorIs(t, err, observability.ErrUnknownLevel)

	_, err = observability.NewLogger(io.Discard, "info", "xml")
	require.ErrorIs(t, err, observability.ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := observability.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.False(t, observability.Discard().Enabled(context.Background(), slog.LevelError))
}

func TestTelemetry_ObserveTrialAndScrape(t *testing.T) {
	t.Parallel()

	tel := observability.NewTelemetry()
	tel.ObserveTrial(results.Row{
		Algorithm: sorting.MergeSortName, Case: "best", Size: 4, Trial: 1,
		Elapsed: time.Millisecond,
		Metrics: sorting.Record{sorting.MetricComparisons: 4},
	})
	tel.ObserveTrial(results.Row{
		Algorithm: sorting.MergeSortName, Case: "best", Size: 4, Trial: 2,
		Elapsed: time.Millisecond,
		Metrics: sorting.Record{sorting.MetricComparisons: 4},
	})

	families, err := tel.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)

	srv := httptest.NewServer(tel.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `sortbench_trials_total{algorithm="merge_sort",case="best"} 2`)
	assert.Contains(t, text, `sortbench_comparisons_total{algorithm="merge_sort"} 8`)
	assert.Contains(t, text, `sortbench_trial_duration_seconds_count{algorithm="merge_sort",case="best"} 2`)
}

func TestTelemetry_NilIsNoop(t *testing.T) {
	t.Parallel()

	var tel *observability.Telemetry
	assert.NotPanics(t, func() { tel.ObserveTrial(results.Row{}) })
}
