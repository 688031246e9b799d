package domain

import (
	"strings"
	"testing"

	m "github.com/pumalang/pumagen/internal/model"
)

func analyzeText(text string) *m.Document {
	return Analyze("test.puma", text)
}

func diagnosticsByCategory(doc *m.Document, category m.DiagnosticCategory) []m.Diagnostic {
	var matched []m.Diagnostic

	for _, diag := range doc.Diagnostics {
		if diag.Category == category {
			matched = append(matched, diag)
		}
	}

	return matched
}

func TestValidateKindExclusivity(t *testing.T) {
	doc := analyzeText("type First is object\n\ntrait Second\n")

	conflicts := diagnosticsByCategory(doc, m.StructuralConflict)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 structural conflict, got %d", len(conflicts))
	}

	message := conflicts[0].Message
	if !strings.Contains(message, "type") || !strings.Contains(message, "trait") {
		t.Errorf("expected message to name both kinds found, got %q", message)
	}
}

func TestValidateThreeKindsFound(t *testing.T) {
	doc := analyzeText("module M\n\ntype T is object\n\ntrait R\n")

	conflicts := diagnosticsByCategory(doc, m.StructuralConflict)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 structural conflict, got %d", len(conflicts))
	}

	message := conflicts[0].Message
	for _, kind := range []string{"module", "type", "trait"} {
		if !strings.Contains(message, kind) {
			t.Errorf("expected message to mention %s, got %q", kind, message)
		}
	}
}

func TestValidateStartWithoutModule(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "start in type",
			text:     "type T is object\n\nstart\n",
			expected: 1,
		},
		{
			name:     "start with no selector at all",
			text:     "start\n",
			expected: 1,
		},
		{
			name:     "start in module is fine",
			text:     "module App\n\nstart\n",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := analyzeText(tt.text)

			violations := diagnosticsByCategory(doc, m.ContextViolation)
			if len(violations) != tt.expected {
				t.Errorf("expected %d context violations, got %d", tt.expected, len(violations))
			}
		})
	}
}

func TestValidateLifecycleConflict(t *testing.T) {
	doc := analyzeText("module App\n\ninitialize\n\nstart\n\nfinalize\n")

	conflicts := diagnosticsByCategory(doc, m.LifecycleConflict)
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly 1 lifecycle conflict, got %d", len(conflicts))
	}

	// start is legal here: the file is a module.
	if violations := diagnosticsByCategory(doc, m.ContextViolation); len(violations) != 0 {
		t.Errorf("expected no context violation for start inside module, got %v", violations)
	}
}

func TestValidateSectionOrder(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "properties before enums",
			text:     "module App\n\nproperties\ncount\n\nenums\nColor\n",
			expected: 1,
		},
		{
			name:     "canonical order is clean",
			text:     "using core\n\nmodule App\n\nenums\nColor\n\nproperties\ncount\n\nfunctions\nRun()\n",
			expected: 0,
		},
		{
			name:     "two inversions produce two diagnostics",
			text:     "module App\n\nfunctions\nRun()\n\nproperties\ncount\n\nenums\nColor\n",
			expected: 2,
		},
		{
			name:     "header after sections is flagged",
			text:     "enums\nColor\n\nmodule App\n",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := analyzeText(tt.text)

			violations := diagnosticsByCategory(doc, m.OrderViolation)
			if len(violations) != tt.expected {
				t.Errorf("expected %d order violations, got %d: %v", tt.expected, len(violations), violations)
			}

			for _, violation := range violations {
				if !strings.Contains(violation.Message, m.CanonicalOrder) {
					t.Errorf("expected message to spell out the canonical order, got %q", violation.Message)
				}
			}
		})
	}
}

func TestValidateDuplicateSectionIsWarning(t *testing.T) {
	doc := analyzeText("module App\n\nenums\nRed\n\nenums\nBlue\n")

	warnings := diagnosticsByCategory(doc, m.DuplicateSection)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 duplicate-section diagnostic, got %d", len(warnings))
	}

	if warnings[0].Severity != m.SeverityWarning {
		t.Errorf("expected warning severity, got %s", warnings[0].Severity)
	}

	if doc.ErrorCount() != 0 {
		t.Errorf("duplicate sections must not suppress generation, error count = %d", doc.ErrorCount())
	}
}

func TestValidateDiagnosticsAreAppendOnly(t *testing.T) {
	doc := analyzeText("type T is object\n\nstart\n")

	before := len(doc.Diagnostics)

	Validate(doc)

	if len(doc.Diagnostics) < before {
		t.Errorf("diagnostics were removed: %d -> %d", before, len(doc.Diagnostics))
	}
}
