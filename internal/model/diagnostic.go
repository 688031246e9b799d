package model

import "fmt"

// DiagnosticCategory classifies a structural-rule violation.
type DiagnosticCategory string

const (
	// StructuralConflict: two or three kind-selectors found in one file.
	StructuralConflict DiagnosticCategory = "structural-conflict"
	// ContextViolation: a start section outside a module.
	ContextViolation DiagnosticCategory = "context-violation"
	// LifecycleConflict: initialize and start both present.
	LifecycleConflict DiagnosticCategory = "lifecycle-conflict"
	// OrderViolation: sections out of canonical order.
	OrderViolation DiagnosticCategory = "order-violation"
	// DuplicateSection: a section keyword repeated; only the first
	// occurrence is translated.
	DuplicateSection DiagnosticCategory = "duplicate-section"
)

// Severity grades a diagnostic. Errors suppress unit generation for the
// file; warnings are reported but do not.
type Severity int

// Available Severity values.
const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}

	return "error"
}

// Diagnostic records one structural-rule violation attributed to a file.
// Diagnostics are accumulated, never thrown, and never fatal to the batch.
type Diagnostic struct {
	FileID   Path
	Category DiagnosticCategory
	Severity Severity
	Message  string
}

// String formats the diagnostic for plain-text reporting.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", d.FileID, d.Severity, d.Category, d.Message)
}
