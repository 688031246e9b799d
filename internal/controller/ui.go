// Package controller provides output adapters for displaying translation
// progress, diagnostics and results.
package controller

import (
	m "github.com/pumalang/pumagen/internal/model"
)

// FileOverview holds per-file section counts for the list command.
type FileOverview struct {
	Path       m.Path
	Kind       string
	Enums      int
	Records    int
	Properties int
	Functions  int
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeTranslate StartMode = iota
	ModeCheck
	ModeList
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithTranslateMode sets the UI to translation mode.
func WithTranslateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTranslate
	}
}

// WithCheckMode sets the UI to check-only mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to list mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// UI defines the interface for displaying translation output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(threads int)
	DisplayUpcomingFilesInfo(count int)
	DisplayFileStarting(path m.Path)
	DisplayFileCompleted(result m.TranslationResult)
	DisplaySummary(results []m.TranslationResult) error
	DisplayOverview(overviews []FileOverview) error
}
