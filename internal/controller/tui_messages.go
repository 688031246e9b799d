package controller

import (
	m "github.com/pumalang/pumagen/internal/model"
)

// Message types.
type concurrencyMsg struct {
	threads int
}

type upcomingMsg struct {
	count int
}

type fileStartMsg struct {
	path m.Path
}

type fileDoneMsg struct {
	result m.TranslationResult
}

type summaryMsg struct {
	results []m.TranslationResult
}

type overviewMsg struct {
	overviews []FileOverview
}
