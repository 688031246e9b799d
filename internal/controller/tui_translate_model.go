package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/pumalang/pumagen/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)

// translateModel handles the TUI display while files are translated.
type translateModel struct {
	mode        StartMode
	width       int
	spin        spinner.Model
	progressBar progress.Model
	threads     int
	total       int
	completed   int
	current     string
	results     []m.TranslationResult
	overviews   []FileOverview
	finished    bool
}

func newTranslateModel(mode StartMode) translateModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return translateModel{
		mode:        mode,
		spin:        spin,
		progressBar: progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (t translateModel) Init() tea.Cmd {
	return t.spin.Tick
}

// Update implements tea.Model.
func (t translateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return t, tea.Quit
		}

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.progressBar.Width = min(msg.Width-8, 60)

	case concurrencyMsg:
		t.threads = msg.threads

	case upcomingMsg:
		t.total = msg.count

	case fileStartMsg:
		t.current = string(msg.path)

	case fileDoneMsg:
		t.completed++
		t.results = append(t.results, msg.result)

		if t.total > 0 {
			return t, t.progressBar.SetPercent(float64(t.completed) / float64(t.total))
		}

	case summaryMsg:
		t.results = msg.results
		t.finished = true

		return t, tea.Quit

	case overviewMsg:
		t.overviews = msg.overviews
		t.finished = true

		return t, tea.Quit

	case progress.FrameMsg:
		bar, cmd := t.progressBar.Update(msg)
		if updated, ok := bar.(progress.Model); ok {
			t.progressBar = updated
		}

		return t, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		t.spin, cmd = t.spin.Update(msg)

		return t, cmd
	}

	return t, nil
}

// View implements tea.Model.
func (t translateModel) View() string {
	if t.finished {
		return t.finalView()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("pumagen") + "\n\n")

	fmt.Fprintf(&b, "%s %s\n", t.spin.View(), fileStyle.Render(t.current))
	fmt.Fprintf(&b, "%s\n", t.progressBar.View())
	fmt.Fprintf(&b, "%s\n", subtleStyle.Render(
		fmt.Sprintf("%d/%d files, %d worker(s)", t.completed, t.total, max(t.threads, 1))))

	return b.String()
}

func (t translateModel) finalView() string {
	if t.mode == ModeList {
		return t.overviewView()
	}

	var b strings.Builder

	translated := 0
	skipped := 0

	for _, result := range t.results {
		for _, diag := range result.Diagnostics {
			style := warnStyle
			if diag.Severity == m.SeverityError {
				style = errStyle
			}

			b.WriteString(style.Render(diag.String()) + "\n")
		}

		if result.Skipped {
			skipped++
		} else if result.Unit != nil {
			translated++
		}
	}

	line := fmt.Sprintf("%s translated, %s skipped, %d file(s) total",
		okStyle.Render(fmt.Sprintf("%d", translated)),
		errStyle.Render(fmt.Sprintf("%d", skipped)),
		len(t.results))

	return summaryStyle.Render(b.String() + line + "\n")
}

func (t translateModel) overviewView() string {
	var b strings.Builder

	for _, overview := range t.overviews {
		fmt.Fprintf(&b, "%s  %s  enums:%d records:%d properties:%d functions:%d\n",
			fileStyle.Render(string(overview.Path)),
			subtleStyle.Render(overview.Kind),
			overview.Enums, overview.Records, overview.Properties, overview.Functions)
	}

	fmt.Fprintf(&b, "\n%d file(s)\n", len(t.overviews))

	return b.String()
}
