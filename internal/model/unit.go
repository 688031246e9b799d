package model

// GeneratedUnit is the immutable declaration/definition text pair produced
// for one Document. A procedural unit uses .h/.c names, a class unit
// .hpp/.cpp names.
type GeneratedUnit struct {
	DeclarationFileName string
	DeclarationText     string
	DefinitionFileName  string
	DefinitionText      string
}

// TranslationResult is the per-file rollup handed to reporting: the unit (if
// any), every diagnostic found, and whether output was suppressed.
type TranslationResult struct {
	FileID      Path
	Kind        Kind
	Unit        *GeneratedUnit
	Diagnostics []Diagnostic
	// Skipped is true when error diagnostics suppressed unit generation
	// and output writing for the file.
	Skipped bool
}

// ErrorCount returns the number of error-severity diagnostics in the result.
func (r TranslationResult) ErrorCount() int {
	count := 0

	for _, diag := range r.Diagnostics {
		if diag.Severity == SeverityError {
			count++
		}
	}

	return count
}

// WarningCount returns the number of warning-severity diagnostics.
func (r TranslationResult) WarningCount() int {
	count := 0

	for _, diag := range r.Diagnostics {
		if diag.Severity == SeverityWarning {
			count++
		}
	}

	return count
}
