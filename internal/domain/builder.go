package domain

import (
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

// Build converts scanned sections into a populated Document. It never
// fails: malformed or partially-matched input yields a smaller document,
// and absent sections leave their fields at the empty default.
func Build(fileID m.Path, sections []m.Section, duplicates []m.SectionKind) *m.Document {
	doc := &m.Document{
		FileID:     fileID,
		Sections:   sections,
		Duplicates: duplicates,
	}

	for _, section := range sections {
		switch section.Kind {
		case m.SectionUsing:
			doc.Imports = parseImports(section.Span)
		case m.SectionModule:
			recordKind(doc, m.KindModule, section.Span)
		case m.SectionType:
			recordKind(doc, m.KindType, section.Span)
		case m.SectionTrait:
			recordKind(doc, m.KindTrait, section.Span)
		case m.SectionEnums:
			doc.Enums = parseNamedLines(section.Span)
		case m.SectionRecords:
			doc.Records = parseNamedLines(section.Span)
		case m.SectionProperties:
			doc.Properties = parseProperties(section.Span)
		case m.SectionFunctions:
			doc.Functions = parseFunctions(section.Span)
		case m.SectionInitialize:
			doc.InitializePresent = true
		case m.SectionStart:
			doc.StartPresent = true
		case m.SectionFinalize:
			doc.FinalizePresent = true
		}
	}

	return doc
}

// recordKind notes a kind-selector marker. The first marker found becomes
// the primary kind; later markers are only recorded so the validator can
// report the conflict while generation still proceeds with the first.
func recordKind(doc *m.Document, kind m.Kind, span string) {
	doc.KindsFound = append(doc.KindsFound, kind)

	if doc.Kind != m.KindNone {
		return
	}

	doc.Kind = kind
	doc.Name = firstToken(span)

	if kind == m.KindType {
		doc.BaseType = parseBaseType(span)
	}

	if kind == m.KindType || kind == m.KindTrait {
		doc.InheritedTraits = parseTraitList(span)
	}
}

// parseImports splits the using span into import names, one per line. A
// repeated `using` keyword at the start of a continuation line is stripped
// so multi-line import blocks read naturally.
func parseImports(span string) []string {
	var imports []string

	for _, line := range strings.Split(span, "\n") {
		name := strings.TrimSpace(line)
		name = strings.TrimSpace(strings.TrimPrefix(name, "using "))

		if name == "" {
			continue
		}

		imports = append(imports, name)
	}

	return imports
}

// parseNamedLines extracts one entity per non-empty, comma-free line.
func parseNamedLines(span string) []m.Entity {
	var entities []m.Entity

	for _, line := range strings.Split(span, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.Contains(name, ",") {
			continue
		}

		entities = append(entities, m.Entity{Name: name})
	}

	return entities
}

// parseProperties extracts one property entity per non-empty line.
func parseProperties(span string) []m.Entity {
	var entities []m.Entity

	for _, line := range strings.Split(span, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		entities = append(entities, m.Entity{Name: name})
	}

	return entities
}

// parseFunctions extracts one entity per declaration line, skipping bare
// braces and comment lines. The name is the identifier preceding the
// opening parenthesis, falling back to the first delimited token.
func parseFunctions(span string) []m.Entity {
	var entities []m.Entity

	for _, line := range strings.Split(span, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "{" || trimmed == "}" {
			continue
		}

		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name := functionName(trimmed)
		if name == "" {
			continue
		}

		entities = append(entities, m.Entity{Name: name})
	}

	return entities
}

func functionName(line string) string {
	if paren := strings.IndexByte(line, '('); paren >= 0 {
		head := strings.TrimSpace(line[:paren])
		if space := strings.LastIndexAny(head, " \t"); space >= 0 {
			head = head[space+1:]
		}

		if head != "" {
			return head
		}
	}

	return firstToken(line)
}

// firstToken returns the leading run of the string up to whitespace, an
// opening parenthesis or a colon.
func firstToken(s string) string {
	s = strings.TrimSpace(s)

	end := len(s)
	for i := range len(s) {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '(' || c == ':' {
			end = i
			break
		}
	}

	return s[:end]
}

// parseBaseType reads the `is <base>` clause of a type header span.
func parseBaseType(span string) string {
	fields := strings.Fields(headerLine(span))
	for i, field := range fields {
		if field == "is" && i+1 < len(fields) {
			return strings.TrimSuffix(fields[i+1], ",")
		}
	}

	return ""
}

// parseTraitList reads the `has <name>, <name>, ...` clause anywhere in a
// type or trait header span. Names are comma-separated; empties are dropped.
func parseTraitList(span string) []string {
	idx := wholeWordOffsets(span, "has")
	if len(idx) == 0 {
		return nil
	}

	rest := span[idx[0]+len("has"):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	var traits []string

	for _, part := range strings.Split(rest, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		traits = append(traits, name)
	}

	return traits
}

// headerLine returns the first line of a header span, where the name, base
// type and trait list live.
func headerLine(span string) string {
	if nl := strings.IndexByte(span, '\n'); nl >= 0 {
		return span[:nl]
	}

	return span
}
