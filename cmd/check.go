package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pumalang/pumagen/internal/domain"
)

var checkParallelFlag int
var checkExcludeFlags []string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate Puma sources without writing output",
		Long: `Run the full translation pipeline over every Puma source under the
given paths, reporting every structural violation found, but write
nothing. Exits non-zero when any file carries error diagnostics.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Translate(domain.TranslateArgs{
				Paths:   parsePaths(args),
				Exclude: checkExcludeFlags,
				Threads: checkParallelFlag,
				Write:   false,
			})
		},
	}
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&checkExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
