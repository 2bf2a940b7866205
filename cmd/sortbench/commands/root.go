// Package commands implements CLI command handlers for sortbench.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/config"
	"github.com/katalvlaran/sortlab/observability"
)

// Persistent flag names.
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagSeed      = "seed"
	flagOutput    = "output"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the sortbench command tree.
func NewRootCommand(version string) *cobra.Command {
	ro := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Instrumented sorting benchmarks",
		Long: `sortbench runs heap, insertion, merge, quick and selection sort over
best, worst and average case inputs, recording comparisons, swaps,
recursion depth, wall-clock and CPU time per trial.

Commands:
  run        Run the experiment grid
  report     Build tables and charts from a results file
  sort       Sort a sequence and print its metrics
  generate   Print a generated input
  version    Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&ro.configPath, flagConfig, "", "config file (default: ./sortbench.yaml if present)")
	pf.StringVar(&ro.logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
	pf.StringVar(&ro.logFormat, flagLogFormat, "", "log format: text or json")

	rootCmd.AddCommand(
		newRunCommand(ro),
		newReportCommand(ro),
		newSortCommand(),
		newGenerateCommand(),
		newVersionCommand(version),
	)

	return rootCmd
}

// load reads the configuration and applies the persistent flag overrides.
func (ro *rootOptions) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(ro.configPath)
	if err != nil {
		return nil, err
	}

	if ro.logLevel != "" {
		cfg.Logging.Level = ro.logLevel
	}
	if ro.logFormat != "" {
		cfg.Logging.Format = ro.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// logger builds the process logger on the command's error stream.
func logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return observability.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sortbench %s\n", version)
		},
	}
}
