package domain

import (
	"fmt"
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

const classStub = "    // not yet implemented\n"

// generateClassUnit renders the C++-style pair for a type or trait: a class
// declaration with its inheritance list in the header, and out-of-line stub
// bodies (types only) in the source file.
func generateClassUnit(doc *m.Document) *m.GeneratedUnit {
	name := unitName(doc)
	names := functionNames(doc)

	declName := name + ".hpp"
	defName := name + ".cpp"

	return &m.GeneratedUnit{
		DeclarationFileName: declName,
		DeclarationText:     renderClassHeader(doc, name, declName, names),
		DefinitionFileName:  defName,
		DefinitionText:      renderClassSource(doc, name, declName, names),
	}
}

func renderClassHeader(doc *m.Document, name, declName string, names []string) string {
	var b strings.Builder

	guard := guardMacro(declName)
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)

	for _, imp := range doc.Imports {
		fmt.Fprintf(&b, "#include \"%s.hpp\"\n", identifier(imp))
	}

	if len(doc.Imports) > 0 {
		b.WriteString("\n")
	}

	for _, trait := range doc.InheritedTraits {
		fmt.Fprintf(&b, "class %s;\n", identifier(trait))
	}

	if len(doc.InheritedTraits) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "class %s%s {\npublic:\n", name, inheritanceList(doc))

	fmt.Fprintf(&b, "    virtual ~%s() = default;\n", name)

	if doc.Kind == m.KindType {
		fmt.Fprintf(&b, "    %s() = default;\n", name)
	}

	b.WriteString("\n")

	for _, enum := range doc.Enums {
		fmt.Fprintf(&b, "    enum class %s {\n    };\n\n", identifier(enum.Name))
	}

	for _, record := range doc.Records {
		fmt.Fprintf(&b, "    struct %s {\n    };\n\n", identifier(record.Name))
	}

	for _, property := range doc.Properties {
		fmt.Fprintf(&b, "    int %s;\n", identifier(property.Name))
	}

	if len(doc.Properties) > 0 {
		b.WriteString("\n")
	}

	for _, delegate := range doc.Delegates {
		fmt.Fprintf(&b, "    using %s = void (*)();\n", identifier(delegate.Name))
	}

	if len(doc.Delegates) > 0 {
		b.WriteString("\n")
	}

	for _, fn := range names {
		if doc.Kind == m.KindTrait {
			fmt.Fprintf(&b, "    virtual void %s() = 0;\n", fn)
		} else {
			fmt.Fprintf(&b, "    virtual void %s();\n", fn)
		}
	}

	if len(names) > 0 {
		b.WriteString("\n")
	}

	if doc.Kind == m.KindType {
		if doc.InitializePresent {
			b.WriteString("    void Initialize();\n")
		}

		if doc.StartPresent {
			b.WriteString("    void Start();\n")
		}

		if doc.FinalizePresent {
			b.WriteString("    void Finalize();\n")
		}
	}

	fmt.Fprintf(&b, "};\n\n#endif /* %s */\n", guard)

	return b.String()
}

// inheritanceList composes the base list: the explicit base type first
// (types only), followed by every inherited trait, each as a public base.
func inheritanceList(doc *m.Document) string {
	var bases []string

	if doc.Kind == m.KindType && doc.BaseType != "" {
		bases = append(bases, "public "+doc.BaseType)
	}

	for _, trait := range doc.InheritedTraits {
		bases = append(bases, "public "+identifier(trait))
	}

	if len(bases) == 0 {
		return ""
	}

	return " : " + strings.Join(bases, ", ")
}

func renderClassSource(doc *m.Document, name, declName string, names []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%s\"\n", declName)

	// Traits declare contracts only; their definition file carries no
	// bodies at all.
	if doc.Kind != m.KindType {
		return b.String()
	}

	b.WriteString("\n")

	if doc.InitializePresent {
		writeClassStub(&b, name, "Initialize")
	}

	if doc.StartPresent {
		writeClassStub(&b, name, "Start")
	}

	if doc.FinalizePresent {
		writeClassStub(&b, name, "Finalize")
	}

	for _, fn := range names {
		writeClassStub(&b, name, fn)
	}

	return b.String()
}

func writeClassStub(b *strings.Builder, class, method string) {
	fmt.Fprintf(b, "void %s::%s()\n{\n%s}\n\n", class, method, classStub)
}
