package results_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

func sampleRows() []results.Row {
	return []results.Row{
		{
			Algorithm: sorting.QuickSortName, Case: "average", Size: 5, Trial: 1,
			Elapsed: 1500 * time.Microsecond, CPUTime: time.Millisecond,
			Metrics: sorting.Record{
				sorting.MetricComparisons: 7, sorting.MetricSwaps: 9,
				sorting.MetricRecursionDepth: 3, sorting.MetricPartitionCalls: 3,
			},
		},
		{
			Algorithm: sorting.InsertionSortName, Case: "worst", Size: 5, Trial: 2,
			Elapsed: 2 * time.Microsecond,
			Metrics: sorting.Record{
				sorting.MetricComparisons: 10, sorting.MetricSwaps: 14,
				sorting.MetricRecursionDepth: 0,
			},
		},
	}
}

func TestColumns(t *testing.T) {
	t.Parallel()

	cols := results.Columns()
	assert.Equal(t, []string{
		"algorithm", "case", "size", "trial", "elapsed_seconds", "cpu_seconds",
		"comparisons", "swaps", "recursion_depth", "heapify_calls", "partition_calls",
	}, cols)
	assert.Equal(t, cols[4:], results.ValueColumns())
}

func TestCSV_RoundTripKeepsAbsentMetrics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, results.WriteCSV(&buf, sampleRows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "insertion_sort,worst,5,2,2e-06,0,10,14,0,,", lines[2])

	got, err := results.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), got)

	_, ok := got[1].Metric(sorting.MetricPartitionCalls)
	assert.False(t, ok, "absent metric must stay absent")
	v, ok := got[1].Metric(sorting.MetricRecursionDepth)
	assert.True(t, ok, "zero metric must stay present")
	assert.Zero(t, v)
}

func TestReadCSV_ByHeaderName(t *testing.T) {
	t.Parallel()

	in := "size,algorithm,trial,case,swaps\n4,heap_sort,1,best,6\n"
	got, err := results.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "heap_sort", got[0].Algorithm)
	assert.Equal(t, 4, got[0].Size)
	assert.Equal(t, sorting.Record{sorting.MetricSwaps: 6}, got[0].Metrics)
}

func TestReadCSV_IntegralFloatMetric(t *testing.T) {
	t.Parallel()

	in := "algorithm,case,size,trial,comparisons\nmerge_sort,best,2,1,1.0\n"
	got, err := results.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got[0].Metrics[sorting.MetricComparisons])
}

func TestReadCSV_Malformed(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing column": "algorithm,case,size\nquick_sort,best,1\n",
		"bad size":       "algorithm,case,size,trial\nquick_sort,best,x,1\n",
		"bad metric":     "algorithm,case,size,trial,swaps\nquick_sort,best,1,1,1.5\n",
		"field count":    "algorithm,case,size,trial\nquick_sort,best,1\n",
	}
	for name, in := range tests {
		_, err := results.ReadCSV(strings.NewReader(in))
		assert.ErrorIs(t, err, results.ErrMalformedRow, name)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	t.Parallel()

	got, err := results.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRow_Value(t *testing.T) {
	t.Parallel()

	row := sampleRows()[0]
	v, ok := row.Value(results.ColElapsed)
	assert.True(t, ok)
	assert.InDelta(t, 0.0015, v, 1e-12)

	v, ok = row.Value(sorting.MetricPartitionCalls)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = row.Value(sorting.MetricHeapifyCalls)
	assert.False(t, ok)
	_, ok = row.Value(results.ColAlgorithm)
	assert.False(t, ok)
}

func TestTrialLog_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, compressed := range []bool{false, true} {
		var buf bytes.Buffer
		log := results.NewTrialLog(&buf, compressed)
		for _, row := range sampleRows() {
			require.NoError(t, log.Write(row))
		}
		require.NoError(t, log.Close())
		assert.Equal(t, 2, log.Len())

		if !compressed {
			first := strings.SplitN(buf.String(), "\n", 2)[0]
			assert.Contains(t, first, `"partition_calls":3`)
			assert.Contains(t, first, `"algorithm":"quick_sort"`)
		}

		got, err := results.ReadTrialLog(&buf, compressed)
		require.NoError(t, err, "compressed=%v", compressed)
		assert.Equal(t, sampleRows(), got, "compressed=%v", compressed)
	}
}

func TestTrialLog_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trials.jsonl.lz4")
	log, err := results.CreateTrialLog(path, true)
	require.NoError(t, err)
	require.NoError(t, log.Write(sampleRows()[0]))
	require.NoError(t, log.Close())

	got, err := results.OpenTrialLog(path, true)
	require.NoError(t, err)
	assert.Equal(t, sampleRows()[:1], got)
}

func TestReadTrialLog_Malformed(t *testing.T) {
	t.Parallel()

	_, err := results.ReadTrialLog(strings.NewReader(`{"algorithm":1}`+"\n"), false)
	assert.ErrorIs(t, err, results.ErrMalformedRow)

	_, err = results.ReadTrialLog(strings.NewReader("not json\n"), false)
	assert.ErrorIs(t, err, results.ErrMalformedRow)
}
