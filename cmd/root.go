// Package cmd provides the root command and CLI setup for pumagen.
package cmd

import (
	"os"

	"github.com/pumalang/pumagen/internal/adapter"
	"github.com/pumalang/pumagen/internal/controller"
	"github.com/pumalang/pumagen/internal/domain"
	m "github.com/pumalang/pumagen/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var unitWriter adapter.UnitWriter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	unitWriter = adapter.NewUnitWriter(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, unitWriter, ui)
}

var listFlag bool
var parallelFlag int
var outFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pumagen [paths...]",
		Short: "Puma to C/C++ translator",
		Long: `Pumagen translates Puma source files into paired declaration and
definition units: a .h/.c pair for modules and a .hpp/.cpp pair for
types and traits. Files with structural errors are reported and
skipped; the rest of the batch keeps going.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := parsePaths(args)

			if listFlag {
				return workflow.List(domain.ListArgs{Paths: paths})
			}

			return workflow.Translate(domain.TranslateArgs{
				Paths:   paths,
				Out:     m.Path(outFlag),
				Threads: parallelFlag,
				Write:   true,
			})
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list source files and their section counts instead of translating")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for translation")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "directory for generated units (default: next to each source file)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{m.Path("./...")}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
