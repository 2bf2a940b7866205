package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/results"
	"github.com/katalvlaran/sortlab/stats"
)

const flagColumn = "column"

type reportCommand struct {
	root   *rootOptions
	output string
	column string
}

func newReportCommand(ro *rootOptions) *cobra.Command {
	rc := &reportCommand{root: ro}

	cmd := &cobra.Command{
		Use:   "report <results.csv>",
		Short: "Build tables and charts from a results file",
		Long: `Aggregate a results file by algorithm, case and size, then write
detail.csv, summary.csv, summary.yaml and charts.html to the output directory
and print one column's statistics as a table.`,
		Args: cobra.ExactArgs(1),
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.output, flagOutput, "o", "", "output directory (default: config output.dir)")
	cmd.Flags().StringVar(&rc.column, flagColumn, results.ColElapsed, "column printed as a table")

	return cmd
}

func (rc *reportCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := rc.root.load()
	if err != nil {
		return err
	}
	dir := cfg.Output.Dir
	if rc.output != "" {
		dir = rc.output
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer f.Close()

	rows, err := results.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	paths, err := report.Write(dir, rows)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.RenderTable(out, stats.Aggregate(rows), rc.column)

	color.New(color.FgGreen).Fprintf(out, "Report written for %d trials\n", len(rows))
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", p)
	}

	return nil
}
