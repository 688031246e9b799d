// Package domain contains the core Puma translation pipeline: section
// scanning, document building, structural validation and unit generation.
package domain

import (
	"sort"
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

// scanKinds lists every recognized section keyword, matched case-sensitively
// as a whole word. Only the first occurrence of each keyword is scanned.
var scanKinds = []m.SectionKind{
	m.SectionUsing,
	m.SectionModule,
	m.SectionType,
	m.SectionTrait,
	m.SectionEnums,
	m.SectionRecords,
	m.SectionProperties,
	m.SectionInitialize,
	m.SectionStart,
	m.SectionFinalize,
	m.SectionFunctions,
}

// Scan locates each recognized section in the raw source text. It is a pure
// function: no side effects, no failure mode. The returned sections are
// ordered by offset. Duplicates lists every kind whose keyword occurred more
// than once; the extra occurrences are not scanned.
func Scan(text string) ([]m.Section, []m.SectionKind) {
	var sections []m.Section

	var duplicates []m.SectionKind

	for _, kind := range scanKinds {
		offsets := wholeWordOffsets(text, string(kind))
		if len(offsets) == 0 {
			continue
		}

		first := offsets[0]
		end := spanEnd(text, first+len(kind))

		sections = append(sections, m.Section{
			Kind:   kind,
			Offset: first,
			Span:   text[first+len(kind) : end],
		})

		// A keyword repeated inside the first section's own span (a
		// multi-line using block, say) is not a repeated header.
		for _, offset := range offsets[1:] {
			if offset >= end {
				duplicates = append(duplicates, kind)

				break
			}
		}
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Offset < sections[j].Offset
	})

	return sections, duplicates
}

// wholeWordOffsets returns every offset where word occurs in text with no
// identifier character on either side.
func wholeWordOffsets(text, word string) []int {
	var offsets []int

	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], word)
		if idx < 0 {
			break
		}

		at := from + idx
		if isWordBoundary(text, at, len(word)) {
			offsets = append(offsets, at)
		}

		from = at + len(word)
	}

	return offsets
}

func isWordBoundary(text string, at, length int) bool {
	if at > 0 && isIdentChar(text[at-1]) {
		return false
	}

	end := at + length
	if end < len(text) && isIdentChar(text[end]) {
		return false
	}

	return true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// spanEnd returns the offset where the section starting after a keyword
// ends: the beginning of the next blank line, or the end of input.
func spanEnd(text string, from int) int {
	at := from

	for at < len(text) {
		lineEnd := strings.IndexByte(text[at:], '\n')
		if lineEnd < 0 {
			return len(text)
		}

		next := at + lineEnd + 1
		if isBlankLine(text, next) {
			return next
		}

		at = next
	}

	return len(text)
}

// isBlankLine reports whether the line starting at offset contains only
// whitespace.
func isBlankLine(text string, at int) bool {
	for i := at; i < len(text); i++ {
		switch text[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}

	return true
}
