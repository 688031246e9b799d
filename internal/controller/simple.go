package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	m "github.com/pumalang/pumagen/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; simple output has nothing to wait for.
func (s *SimpleUI) Wait() {

}

// DisplayConcurrencyInfo shows worker pool settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int) {
	s.printf("Translating with %d worker(s)\n", threads)
}

// DisplayUpcomingFilesInfo shows how many files will be translated.
func (s *SimpleUI) DisplayUpcomingFilesInfo(count int) {
	s.printf("Found %d source file(s)\n", count)
}

// DisplayFileStarting shows the file a worker picked up.
func (s *SimpleUI) DisplayFileStarting(path m.Path) {
	s.printf("Translating %s\n", path)
}

// DisplayFileCompleted prints the per-file outcome and every diagnostic
// found, not just the first, so a whole file can be fixed in one pass.
func (s *SimpleUI) DisplayFileCompleted(result m.TranslationResult) {
	for _, diag := range result.Diagnostics {
		s.printf("%s\n", diag)
	}

	if result.Skipped {
		s.printf("Skipped %s (%d error(s))\n", result.FileID, result.ErrorCount())
	}
}

// DisplaySummary renders the final per-file results table.
func (s *SimpleUI) DisplaySummary(results []m.TranslationResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Kind", "Units", "Errors", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	translated := 0
	skipped := 0

	for _, result := range results {
		units := 0
		if result.Unit != nil {
			units = 1
			translated++
		}

		if result.Skipped {
			skipped++
		}

		table.Append([]string{
			string(result.FileID),
			result.Kind.String(),
			fmt.Sprintf("%d", units),
			fmt.Sprintf("%d", result.ErrorCount()),
			fmt.Sprintf("%d", result.WarningCount()),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		fmt.Sprintf("%d", translated),
		fmt.Sprintf("skipped %d", skipped),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayOverview renders per-file section counts.
func (s *SimpleUI) DisplayOverview(overviews []FileOverview) error {
	if len(overviews) == 0 {
		s.printf("No source files found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Kind", "Enums", "Records", "Properties", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, overview := range overviews {
		table.Append([]string{
			string(overview.Path),
			overview.Kind,
			fmt.Sprintf("%d", overview.Enums),
			fmt.Sprintf("%d", overview.Records),
			fmt.Sprintf("%d", overview.Properties),
			fmt.Sprintf("%d", overview.Functions),
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
