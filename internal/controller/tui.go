package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/pumalang/pumagen/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the provided output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	return t.startWithModel(newTranslateModel(config.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		_, _ = program.Run()
		close(done)
	}(t.program, t.done)

	return nil
}

// Wait blocks until the program exits (summary shown or user quit).
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close asks the program to quit and waits for it to finish.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	done := t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// DisplayConcurrencyInfo shows worker pool settings.
func (t *TUI) DisplayConcurrencyInfo(threads int) {
	t.send(concurrencyMsg{threads: threads})
}

// DisplayUpcomingFilesInfo shows how many files will be translated.
func (t *TUI) DisplayUpcomingFilesInfo(count int) {
	t.send(upcomingMsg{count: count})
}

// DisplayFileStarting shows the file a worker picked up.
func (t *TUI) DisplayFileStarting(path m.Path) {
	t.send(fileStartMsg{path: path})
}

// DisplayFileCompleted records a per-file outcome.
func (t *TUI) DisplayFileCompleted(result m.TranslationResult) {
	t.send(fileDoneMsg{result: result})
}

// DisplaySummary shows the final results and lets the program finish.
func (t *TUI) DisplaySummary(results []m.TranslationResult) error {
	t.send(summaryMsg{results: results})

	return nil
}

// DisplayOverview shows per-file section counts.
func (t *TUI) DisplayOverview(overviews []FileOverview) error {
	t.send(overviewMsg{overviews: overviews})

	return nil
}
