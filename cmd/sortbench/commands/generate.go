package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/generator"
)

func newGenerateCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:     "generate <case> <algorithm> <n>",
		Short:   "Print a generated input",
		Example: `  sortbench generate worst merge_sort 5`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := generator.ParseCase(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[2], err)
			}

			var opts []generator.Option
			if cmd.Flags().Changed(flagSeed) {
				opts = append(opts, generator.WithSeed(seed))
			}

			seq, err := generator.Generate(c, args[1], n, opts...)
			if err != nil {
				return err
			}

			parts := make([]string, len(seq))
			for i, v := range seq {
				parts[i] = strconv.Itoa(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, flagSeed, 0, "shuffle seed (average case)")

	return cmd
}
