package domain

import (
	"fmt"
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

// fallbackName is used when a header carried no parseable name, so the
// generator can still honor its never-fail contract.
const fallbackName = "Unnamed"

// Generate renders zero or one declaration/definition pair for a document.
// The caller guarantees the document is free of error diagnostics. A
// document with no kind-selector legally produces no unit. The generator
// has no diagnostic channel of its own and never fails on a structurally
// valid document.
func Generate(doc *m.Document) *m.GeneratedUnit {
	switch doc.Kind {
	case m.KindModule:
		return generateProceduralUnit(doc)
	case m.KindType, m.KindTrait:
		return generateClassUnit(doc)
	default:
		return nil
	}
}

// namer hands out deterministic placeholder identifiers for generated
// functions. A fresh namer is created per generation pass so declaration
// and definition agree on names and repeated runs over the same document
// yield byte-identical output. It must never be shared across files.
type namer struct {
	next int
}

func newNamer() *namer {
	return &namer{next: 1}
}

func (n *namer) function() string {
	name := fmt.Sprintf("Function%d", n.next)
	n.next++

	return name
}

// functionNames allocates one placeholder name per function up front so the
// declaration and definition renders draw from the same list.
func functionNames(doc *m.Document) []string {
	names := make([]string, 0, len(doc.Functions))

	n := newNamer()
	for range doc.Functions {
		names = append(names, n.function())
	}

	return names
}

// unitName returns the document name, falling back when the header carried
// none.
func unitName(doc *m.Document) string {
	if doc.Name == "" {
		return fallbackName
	}

	return doc.Name
}

// identifier reduces an entity name to its leading identifier token,
// dropping any trailing annotation the builder preserved verbatim.
func identifier(name string) string {
	return firstToken(name)
}

// guardMacro derives the include-once guard for a declaration file name.
func guardMacro(fileName string) string {
	macro := strings.ToUpper(fileName)
	macro = strings.ReplaceAll(macro, ".", "_")

	return macro
}
