package domain

import (
	"fmt"
	"strings"

	m "github.com/pumalang/pumagen/internal/model"
)

const proceduralStub = "    /* not yet implemented */\n"

// generateProceduralUnit renders the C-style pair for a module: free
// function prototypes and globals in the header, storage and stub bodies in
// the source file.
func generateProceduralUnit(doc *m.Document) *m.GeneratedUnit {
	name := unitName(doc)
	names := functionNames(doc)

	declName := name + ".h"
	defName := name + ".c"

	return &m.GeneratedUnit{
		DeclarationFileName: declName,
		DeclarationText:     renderModuleHeader(doc, name, declName, names),
		DefinitionFileName:  defName,
		DefinitionText:      renderModuleSource(doc, name, declName, names),
	}
}

func renderModuleHeader(doc *m.Document, name, declName string, names []string) string {
	var b strings.Builder

	guard := guardMacro(declName)
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)

	for _, imp := range doc.Imports {
		fmt.Fprintf(&b, "#include \"%s.h\"\n", identifier(imp))
	}

	if len(doc.Imports) > 0 {
		b.WriteString("\n")
	}

	for _, enum := range doc.Enums {
		fmt.Fprintf(&b, "typedef enum {\n} %s;\n\n", identifier(enum.Name))
	}

	for _, record := range doc.Records {
		id := identifier(record.Name)
		fmt.Fprintf(&b, "typedef struct %s {\n} %s;\n\n", id, id)
	}

	for _, delegate := range doc.Delegates {
		fmt.Fprintf(&b, "typedef void (*%s)(void);\n\n", identifier(delegate.Name))
	}

	for _, property := range doc.Properties {
		fmt.Fprintf(&b, "extern int %s;\n", identifier(property.Name))
	}

	if len(doc.Properties) > 0 {
		b.WriteString("\n")
	}

	for _, fn := range names {
		fmt.Fprintf(&b, "void %s_%s(void);\n", name, fn)
	}

	if len(names) > 0 {
		b.WriteString("\n")
	}

	if doc.InitializePresent {
		fmt.Fprintf(&b, "void %s_Initialize(void);\n", name)
	}

	if doc.StartPresent {
		fmt.Fprintf(&b, "void %s_Start(void);\n", name)
	}

	if doc.FinalizePresent {
		fmt.Fprintf(&b, "void %s_Finalize(void);\n", name)
	}

	if doc.InitializePresent || doc.StartPresent || doc.FinalizePresent {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "#endif /* %s */\n", guard)

	return b.String()
}

func renderModuleSource(doc *m.Document, name, declName string, names []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%s\"\n\n", declName)

	for _, property := range doc.Properties {
		fmt.Fprintf(&b, "int %s;\n", identifier(property.Name))
	}

	if len(doc.Properties) > 0 {
		b.WriteString("\n")
	}

	if doc.InitializePresent {
		writeProceduralStub(&b, name, "Initialize")
	}

	if doc.StartPresent {
		writeProceduralStub(&b, name, "Start")
	}

	if doc.FinalizePresent {
		writeProceduralStub(&b, name, "Finalize")
	}

	for _, fn := range names {
		writeProceduralStub(&b, name, fn)
	}

	return b.String()
}

func writeProceduralStub(b *strings.Builder, module, fn string) {
	fmt.Fprintf(b, "void %s_%s(void)\n{\n%s}\n\n", module, fn, proceduralStub)
}
