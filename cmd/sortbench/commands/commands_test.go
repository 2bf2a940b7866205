package commands_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/cmd/sortbench/commands"
	"github.com/katalvlaran/sortlab/generator"
	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/sorting"
)

const smallConfig = `
experiment:
  algorithms: [quick_sort, insertion_sort]
  cases: [best, worst, average]
  repetitions: 2
  sizes:
    large: [1, 8]
    small: [4]
  seed: 5
  verify: true
logging:
  level: error
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := commands.NewRootCommand("test")
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sortbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfig), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sortbench test\n", out)
}

func TestSort(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "sort", "insertion_sort", "5", "3", "4", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "[1 2 3 4 5]")
	assert.Contains(t, out, "comparisons")
	assert.Contains(t, out, "recursion_depth")
}

func TestSort_Errors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "sort", "bogo_sort", "1")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, err = execute(t, "sort", "heap_sort", "x")
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "generate", "worst", "merge_sort", "5")
	require.NoError(t, err)
	assert.Equal(t, "5 4 3 2 1\n", out)

	a, err := execute(t, "generate", "medio", "heap_sort", "20", "--seed", "3")
	require.NoError(t, err)
	b, err := execute(t, "generate", "average", "heap_sort", "20", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = execute(t, "generate", "typical", "heap_sort", "3")
	require.ErrorIs(t, err, generator.ErrUnknownCase)

	_, err = execute(t, "generate", "--", "best", "heap_sort", "-1")
	require.ErrorIs(t, err, generator.ErrNegativeSize)
}

func TestRunThenReport(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t)
	outDir := t.TempDir()

	out, err := execute(t, "run", "--config", cfgPath, "--output", outDir, "--compress-log", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed 18 trials")

	f, err := os.Open(filepath.Join(outDir, commands.ResultsFile))
	require.NoError(t, err)
	rows, err := results.ReadCSV(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Len(t, rows, 3*2*2+3*1*2)

	logged, err := results.OpenTrialLog(filepath.Join(outDir, commands.TrialLogFile+".lz4"), true)
	require.NoError(t, err)
	assert.Len(t, logged, len(rows))

	_, err = os.Stat(filepath.Join(outDir, commands.SummaryFile))
	require.NoError(t, err)

	reportDir := filepath.Join(outDir, "report")
	out, err = execute(t, "report", filepath.Join(outDir, commands.ResultsFile),
		"--config", cfgPath, "--output", reportDir, "--column", sorting.MetricComparisons)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written for 18 trials")
	assert.Contains(t, out, "quick_sort")

	_, err = os.Stat(filepath.Join(reportDir, report.ChartsFile))
	require.NoError(t, err)
}

func TestRun_FlagOverridesValidated(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "--config", writeConfig(t), "--output", t.TempDir(), "--repetitions", "0")
	require.Error(t, err)

	_, err = execute(t, "run", "--config", writeConfig(t), "--output", t.TempDir(), "--algorithms", "bogo_sort")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestRun_BadLogLevelFlag(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "--config", writeConfig(t), "--log-level", "loud")
	require.Error(t, err)
}
