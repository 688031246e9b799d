package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pumalang/pumagen/internal/domain"
	m "github.com/pumalang/pumagen/internal/model"
)

var buildParallelFlag int
var buildOutFlag string
var buildExcludeFlags []string

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Translate Puma sources and write generated units",
		Long: `Translate every Puma source under the given paths and write the
generated declaration/definition pairs. Files with structural errors
are reported and skipped without partial output.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Translate(domain.TranslateArgs{
				Paths:   parsePaths(args),
				Exclude: buildExcludeFlags,
				Out:     m.Path(buildOutFlag),
				Threads: buildParallelFlag,
				Write:   true,
			})
		},
	}
	cmd.Flags().IntVarP(&buildParallelFlag, "parallel", "p", 1, "number of parallel workers for translation")
	cmd.Flags().StringVarP(&buildOutFlag, "out", "o", "", "directory for generated units (default: next to each source file)")
	cmd.Flags().StringArrayVarP(&buildExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
