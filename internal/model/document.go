package model

// Kind selects what a Puma source file describes. Exactly one kind is legal
// per file; KindNone means the file declares nothing generatable.
type Kind int

// Available Kind values.
const (
	KindNone Kind = iota
	KindModule
	KindType
	KindTrait
)

// String returns the keyword spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindType:
		return "type"
	case KindTrait:
		return "trait"
	default:
		return "none"
	}
}

// Entity is a named element extracted from a section. Only Name is populated
// today; Members and Body are reserved for a future body-parsing collaborator
// so the Document shape does not have to change when bodies become typed.
type Entity struct {
	Name    string
	Members []string
	Body    string
}

// Document is the structured representation of one Puma source file. It is
// built in a single pass and never mutated afterwards except for diagnostic
// appends by the validator.
type Document struct {
	FileID Path

	Imports []string

	Kind     Kind
	Name     string
	BaseType string
	// KindsFound records every kind-selector marker present in the file,
	// in offset order. More than one entry is a structural conflict; the
	// first entry is still used as the primary kind.
	KindsFound []Kind

	InheritedTraits []string

	Enums      []Entity
	Records    []Entity
	Properties []Entity
	Functions  []Entity
	Delegates  []Entity

	InitializePresent bool
	StartPresent      bool
	FinalizePresent   bool

	// Sections holds every section located by the scanner, in scan order,
	// so the validator can check relative ordering by offset.
	Sections []Section

	// Duplicates lists section kinds whose keyword appeared more than once;
	// only the first occurrence of each was scanned.
	Duplicates []SectionKind

	Diagnostics []Diagnostic
}

// ErrorCount returns the number of error-severity diagnostics attached to
// the document. Warnings do not suppress generation and are not counted.
func (d *Document) ErrorCount() int {
	count := 0

	for _, diag := range d.Diagnostics {
		if diag.Severity == SeverityError {
			count++
		}
	}

	return count
}
