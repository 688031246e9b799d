package adapter

import (
	"fmt"

	m "github.com/pumalang/pumagen/internal/model"
)

// UnitWriter persists generated declaration/definition pairs.
type UnitWriter interface {
	// WriteUnit writes both files of the unit into dir.
	WriteUnit(dir m.Path, unit m.GeneratedUnit) error
}

type unitWriter struct {
	fs SourceFSAdapter
}

// NewUnitWriter constructs a UnitWriter backed by the provided filesystem
// adapter.
func NewUnitWriter(fs SourceFSAdapter) UnitWriter {
	return &unitWriter{fs: fs}
}

func (w *unitWriter) WriteUnit(dir m.Path, unit m.GeneratedUnit) error {
	declPath := w.fs.JoinPath(string(dir), unit.DeclarationFileName)
	if err := w.fs.WriteFile(declPath, []byte(unit.DeclarationText), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", declPath, err)
	}

	defPath := w.fs.JoinPath(string(dir), unit.DefinitionFileName)
	if err := w.fs.WriteFile(defPath, []byte(unit.DefinitionText), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", defPath, err)
	}

	return nil
}
