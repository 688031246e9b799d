package domain

import (
	m "github.com/pumalang/pumagen/internal/model"
)

// Analyze runs the scan, build and validate stages for one source file and
// returns the populated document with its diagnostics. It never fails.
func Analyze(fileID m.Path, text string) *m.Document {
	sections, duplicates := Scan(text)
	doc := Build(fileID, sections, duplicates)

	return Validate(doc)
}

// Translate runs the full pipeline for one source file. When the document
// carries at least one error diagnostic, unit generation is suppressed
// entirely (no partial output) and the result is marked skipped; every
// diagnostic found is still reported so a whole file can be fixed in one
// pass. Translation is pure and per-file: no state crosses file boundaries.
func Translate(fileID m.Path, text string) m.TranslationResult {
	doc := Analyze(fileID, text)

	result := m.TranslationResult{
		FileID:      fileID,
		Kind:        doc.Kind,
		Diagnostics: doc.Diagnostics,
	}

	if doc.ErrorCount() > 0 {
		result.Skipped = true

		return result
	}

	result.Unit = Generate(doc)

	return result
}
