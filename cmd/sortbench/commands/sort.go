package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/sorting"
)

func newSortCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "sort <algorithm> <ints...>",
		Short: "Sort a sequence and print its metrics",
		Example: `  sortbench sort insertion_sort 5 3 4 1 2
  sortbench sort quick_sort --seed 7 9 8 7 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortFn, err := sorting.Lookup(args[0])
			if err != nil {
				return err
			}

			seq := make([]int, 0, len(args)-1)
			for _, a := range args[1:] {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid integer %q: %w", a, err)
				}
				seq = append(seq, v)
			}

			var opts []sorting.Option
			if cmd.Flags().Changed(flagSeed) {
				opts = append(opts, sorting.WithSeed(seed))
			}

			sorted, rec := sortFn(seq, opts...)

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "%s: %v\n", args[0], sorted)
			report.RenderRecord(out, rec)

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, flagSeed, 0, "pivot seed (quick_sort)")

	return cmd
}
