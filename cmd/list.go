package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pumalang/pumagen/internal/domain"
)

var listExcludeFlags []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List Puma sources and their section counts",
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
