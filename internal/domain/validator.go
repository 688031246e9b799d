package domain

import (
	"fmt"
	"sort"
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

// Validate appends structural diagnostics to the document. Each rule is
// independently triggerable and multiple violations in one file each produce
// their own diagnostic. Validation never halts generation itself; the
// driver decides what to do with the error count.
func Validate(doc *m.Document) *m.Document {
	checkKindExclusivity(doc)
	checkStartContext(doc)
	checkLifecycleConflict(doc)
	checkSectionOrder(doc)
	checkDuplicateSections(doc)

	return doc
}

func checkKindExclusivity(doc *m.Document) {
	if len(doc.KindsFound) < 2 {
		return
	}

	names := make([]string, 0, len(doc.KindsFound))
	for _, kind := range doc.KindsFound {
		names = append(names, kind.String())
	}

	appendDiagnostic(doc, m.StructuralConflict, m.SeverityError,
		fmt.Sprintf("file declares %s; exactly one of module, type or trait is allowed",
			strings.Join(names, " and ")))
}

func checkStartContext(doc *m.Document) {
	if doc.StartPresent && doc.Kind != m.KindModule {
		appendDiagnostic(doc, m.ContextViolation, m.SeverityError,
			"start section is only valid inside a module")
	}
}

func checkLifecycleConflict(doc *m.Document) {
	if doc.InitializePresent && doc.StartPresent {
		appendDiagnostic(doc, m.LifecycleConflict, m.SeverityError,
			"initialize and start are mutually exclusive")
	}
}

// checkSectionOrder walks the located sections by ascending offset and
// reports every adjacent pair whose canonical ranks are inverted.
func checkSectionOrder(doc *m.Document) {
	sections := make([]m.Section, len(doc.Sections))
	copy(sections, doc.Sections)

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Offset < sections[j].Offset
	})

	for i := 1; i < len(sections); i++ {
		earlier, later := sections[i-1], sections[i]

		if m.CanonicalRank(later.Kind) < m.CanonicalRank(earlier.Kind) {
			appendDiagnostic(doc, m.OrderViolation, m.SeverityError,
				fmt.Sprintf("section %s must precede %s; required order is %s",
					later.Kind, earlier.Kind, m.CanonicalOrder))
		}
	}
}

func checkDuplicateSections(doc *m.Document) {
	for _, kind := range doc.Duplicates {
		appendDiagnostic(doc, m.DuplicateSection, m.SeverityWarning,
			fmt.Sprintf("section %s appears more than once; only the first occurrence is translated", kind))
	}
}

func appendDiagnostic(doc *m.Document, category m.DiagnosticCategory, severity m.Severity, message string) {
	doc.Diagnostics = append(doc.Diagnostics, m.Diagnostic{
		FileID:   doc.FileID,
		Category: category,
		Severity: severity,
		Message:  message,
	})
}
