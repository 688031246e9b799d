package domain

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/pumalang/pumagen/internal/adapter"
	"github.com/pumalang/pumagen/internal/controller"
	m "github.com/pumalang/pumagen/internal/model"
)

// ErrDiagnosticsFound reports that at least one file was skipped because of
// error diagnostics. The remaining files were still processed.
var ErrDiagnosticsFound = errors.New("diagnostics found")

// TranslateArgs configures a batch translation.
type TranslateArgs struct {
	Paths   []m.Path
	Exclude []string
	// Out is the directory generated units are written to. When empty,
	// units are written next to their source file.
	Out     m.Path
	Threads int
	// Write disables output writing when false (check mode): the full
	// pipeline still runs and diagnostics are still reported.
	Write bool
}

// ListArgs configures a section-count listing.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// Workflow defines the batch translation operations behind the CLI.
type Workflow interface {
	GetSources(roots ...m.Path) ([]m.Path, error)
	Translate(args TranslateArgs) error
	List(args ListArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	writer    adapter.UnitWriter
	ui        controller.UI
}

// NewWorkflow creates a Workflow instance with the provided collaborators.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, writer adapter.UnitWriter, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		writer:    writer,
		ui:        ui,
	}
}

// GetSources collects Puma source files for the provided roots.
func (w *workflow) GetSources(roots ...m.Path) ([]m.Path, error) {
	return w.fsAdapter.Get(roots)
}

// Translate runs the per-file pipeline over every discovered source. Files
// are independent, so they are processed by a bounded worker pool; each
// task owns its document, naming counter and diagnostic list, so no locking
// is needed around the translation itself. A file with error diagnostics is
// skipped (nothing written) while the remaining files keep going.
func (w *workflow) Translate(args TranslateArgs) error {
	sources, err := w.collectSources(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	mode := controller.WithTranslateMode()
	if !args.Write {
		mode = controller.WithCheckMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads)
	w.ui.DisplayUpcomingFilesInfo(len(sources))

	results := make([]m.TranslationResult, len(sources))

	var group errgroup.Group

	group.SetLimit(threads)

	for i, source := range sources {
		group.Go(func() error {
			w.ui.DisplayFileStarting(source)

			result, err := w.translateFile(source, args)
			if err != nil {
				return err
			}

			results[i] = result
			w.ui.DisplayFileCompleted(result)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplaySummary(results); err != nil {
		return err
	}

	w.ui.Wait()

	skipped := 0

	for _, result := range results {
		if result.Skipped {
			skipped++
		}
	}

	if skipped > 0 {
		return fmt.Errorf("%d of %d file(s) skipped: %w", skipped, len(results), ErrDiagnosticsFound)
	}

	return nil
}

func (w *workflow) translateFile(source m.Path, args TranslateArgs) (m.TranslationResult, error) {
	content, err := w.fsAdapter.ReadFile(source)
	if err != nil {
		return m.TranslationResult{}, fmt.Errorf("failed to read %s: %w", source, err)
	}

	result := Translate(source, string(content))

	if args.Write && !result.Skipped && result.Unit != nil {
		dir := args.Out
		if dir == "" {
			dir = w.fsAdapter.DirOf(source)
		}

		if err := w.writer.WriteUnit(dir, *result.Unit); err != nil {
			return m.TranslationResult{}, err
		}
	}

	return result, nil
}

// List reports per-file section counts without generating anything.
func (w *workflow) List(args ListArgs) error {
	sources, err := w.collectSources(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	overviews := make([]controller.FileOverview, 0, len(sources))

	for _, source := range sources {
		content, err := w.fsAdapter.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		doc := Analyze(source, string(content))

		overviews = append(overviews, controller.FileOverview{
			Path:       source,
			Kind:       doc.Kind.String(),
			Enums:      len(doc.Enums),
			Records:    len(doc.Records),
			Properties: len(doc.Properties),
			Functions:  len(doc.Functions),
		})
	}

	if err := w.ui.DisplayOverview(overviews); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) collectSources(paths []m.Path, exclude []string) ([]m.Path, error) {
	sources, err := w.fsAdapter.Get(paths)
	if err != nil {
		return nil, err
	}

	if len(exclude) == 0 {
		return sources, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, pattern)
	}

	filtered := make([]m.Path, 0, len(sources))

	for _, source := range sources {
		excluded := false

		for _, pattern := range patterns {
			if pattern.MatchString(string(source)) {
				excluded = true

				break
			}
		}

		if !excluded {
			filtered = append(filtered, source)
		}
	}

	return filtered, nil
}
