// Package model defines the data structures for Puma translation.
package model

// Path represents a file system path.
type Path string

// SectionKind identifies one of the recognized section keywords of a Puma
// source file.
type SectionKind string

const (
	// SectionUsing is the import list (`using`).
	SectionUsing SectionKind = "using"
	// SectionModule declares a procedural module (`module`).
	SectionModule SectionKind = "module"
	// SectionType declares an object type (`type`).
	SectionType SectionKind = "type"
	// SectionTrait declares a trait contract (`trait`).
	SectionTrait SectionKind = "trait"
	// SectionEnums lists enumeration declarations.
	SectionEnums SectionKind = "enums"
	// SectionRecords lists record declarations.
	SectionRecords SectionKind = "records"
	// SectionProperties lists property declarations.
	SectionProperties SectionKind = "properties"
	// SectionInitialize is the initializer lifecycle block.
	SectionInitialize SectionKind = "initialize"
	// SectionStart is the start lifecycle block (modules only).
	SectionStart SectionKind = "start"
	// SectionFinalize is the finalizer lifecycle block.
	SectionFinalize SectionKind = "finalize"
	// SectionFunctions lists callable function declarations.
	SectionFunctions SectionKind = "functions"
)

// Section is one recognized block located in a source file: its kind, the
// byte offset of the first occurrence of its keyword, and the span of text
// following the keyword up to the next blank line.
type Section struct {
	Kind   SectionKind
	Offset int
	Span   string
}

// canonicalRanks orders sections as the language requires them to appear.
// The three kind-selector keywords share a single "header" rank; initialize
// and start share a rank since at most one may legally be present.
var canonicalRanks = map[SectionKind]int{
	SectionUsing:      0,
	SectionModule:     1,
	SectionType:       1,
	SectionTrait:      1,
	SectionEnums:      2,
	SectionRecords:    3,
	SectionProperties: 4,
	SectionInitialize: 5,
	SectionStart:      5,
	SectionFinalize:   6,
	SectionFunctions:  7,
}

// CanonicalRank returns the required relative position of a section kind.
// Unknown kinds sort last.
func CanonicalRank(kind SectionKind) int {
	rank, ok := canonicalRanks[kind]
	if !ok {
		return len(canonicalRanks)
	}

	return rank
}

// CanonicalOrder is the human-readable form of the required section order,
// used when reporting ordering violations.
const CanonicalOrder = "using < module|type|trait < enums < records < properties < initialize|start < finalize < functions"
