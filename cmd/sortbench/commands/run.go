package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/config"
	"github.com/katalvlaran/sortlab/experiment"
	"github.com/katalvlaran/sortlab/observability"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/stats"
)

// Files written by run into the output directory.
const (
	ResultsFile        = "results.csv"
	SummaryFile        = "summary.csv"
	TrialLogFile       = "trials.jsonl"
	compressedLogExt   = ".lz4"
	metricsPath        = "/metrics"
	metricsReadTimeout = 5 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Flag names of the run command.
const (
	flagRepetitions = "repetitions"
	flagWorkers     = "workers"
	flagAlgorithms  = "algorithms"
	flagCases       = "cases"
	flagVerify      = "verify"
	flagCompressLog = "compress-log"
	flagMetricsAddr = "metrics-addr"
)

// runCommand holds the flag values of the run command.
type runCommand struct {
	root *rootOptions

	repetitions int
	seed        int64
	workers     int
	output      string
	algorithms  []string
	cases       []string
	verify      bool
	compressLog bool
	metricsAddr string
}

func newRunCommand(ro *rootOptions) *cobra.Command {
	rc := &runCommand{root: ro}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the experiment grid",
		Long: `Run every configured algorithm over every case and size, streaming one
row per trial to the trial log, then write results.csv and summary.csv.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	f := cmd.Flags()
	f.IntVar(&rc.repetitions, flagRepetitions, 0, "trials per algorithm, case and size")
	f.Int64Var(&rc.seed, flagSeed, 0, "seed for shuffles and pivots (0 = unseeded)")
	f.IntVar(&rc.workers, flagWorkers, 0, "concurrent trials")
	f.StringVarP(&rc.output, flagOutput, "o", "", "output directory")
	f.StringSliceVar(&rc.algorithms, flagAlgorithms, nil, "algorithms to run")
	f.StringSliceVar(&rc.cases, flagCases, nil, "cases to run: best, worst, average")
	f.BoolVar(&rc.verify, flagVerify, false, "check every output is sorted")
	f.BoolVar(&rc.compressLog, flagCompressLog, false, "lz4-compress the trial log")
	f.StringVar(&rc.metricsAddr, flagMetricsAddr, "", "serve Prometheus metrics on this address")

	return cmd
}

// applyFlags overrides configuration values with explicitly set flags.
func (rc *runCommand) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed(flagRepetitions) {
		cfg.Experiment.Repetitions = rc.repetitions
	}
	if f.Changed(flagSeed) {
		cfg.Experiment.Seed = rc.seed
	}
	if f.Changed(flagWorkers) {
		cfg.Experiment.Workers = rc.workers
	}
	if f.Changed(flagOutput) {
		cfg.Output.Dir = rc.output
	}
	if f.Changed(flagAlgorithms) {
		cfg.Experiment.Algorithms = rc.algorithms
	}
	if f.Changed(flagCases) {
		cfg.Experiment.Cases = rc.cases
	}
	if f.Changed(flagVerify) {
		cfg.Experiment.Verify = rc.verify
	}
	if f.Changed(flagCompressLog) {
		cfg.Output.CompressLog = rc.compressLog
	}
	if f.Changed(flagMetricsAddr) {
		cfg.Telemetry.MetricsAddr = rc.metricsAddr
	}
}

func (rc *runCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := rc.root.load()
	if err != nil {
		return err
	}
	rc.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	log, err := logger(cmd, cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry := observability.NewTelemetry()
	if cfg.Telemetry.MetricsAddr != "" {
		shutdown, err := serveMetrics(cfg.Telemetry.MetricsAddr, telemetry, log)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	logPath := filepath.Join(cfg.Output.Dir, TrialLogFile)
	if cfg.Output.CompressLog {
		logPath += compressedLogExt
	}
	trialLog, err := results.CreateTrialLog(logPath, cfg.Output.CompressLog)
	if err != nil {
		return err
	}

	var collector experiment.Collector
	runner := experiment.NewRunner(
		experiment.WithLogger(log),
		experiment.WithTelemetry(telemetry),
	)

	summary, runErr := runner.Run(ctx, plan, experiment.MultiSink{trialLog, &collector})
	if err := trialLog.Close(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("close trial log: %w", err))
	}
	if runErr != nil {
		return runErr
	}

	rows := collector.Rows()
	resultsPath := filepath.Join(cfg.Output.Dir, ResultsFile)
	if err := writeTo(resultsPath, func(w io.Writer) error { return results.WriteCSV(w, rows) }); err != nil {
		return err
	}
	summaryPath := filepath.Join(cfg.Output.Dir, SummaryFile)
	groups := stats.Aggregate(rows)
	if err := writeTo(summaryPath, func(w io.Writer) error { return stats.WriteSummaryCSV(w, groups) }); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "Completed %d trials in %s\n", summary.Trials, summary.Wall.Round(time.Millisecond))
	fmt.Fprintf(out, "  %s\n  %s\n  %s\n", resultsPath, summaryPath, logPath)

	return nil
}

// serveMetrics starts the Prometheus endpoint and returns its shutdown func.
func serveMetrics(addr string, telemetry *observability.Telemetry, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, telemetry.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: metricsReadTimeout}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", slog.Any("error", err))
		}
	}()
	log.Info("serving metrics", slog.String("addr", ln.Addr().String()+metricsPath))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

func writeTo(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
