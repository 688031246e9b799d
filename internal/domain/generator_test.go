package domain

import (
	"strings"
	"testing"

	m "github.com/pumalang/pumagen/internal/model"
)

func generateFromText(t *testing.T, text string) *m.GeneratedUnit {
	t.Helper()

	doc := analyzeText(text)
	if doc.ErrorCount() > 0 {
		t.Fatalf("expected a diagnostic-free document, got %v", doc.Diagnostics)
	}

	return Generate(doc)
}

func TestGenerateNoKindSelectorYieldsNoUnit(t *testing.T) {
	tests := []string{
		"",
		"using core\n",
		"enums\nColor\n\nfunctions\nRun()\n",
	}

	for _, text := range tests {
		doc := analyzeText(text)
		if unit := Generate(doc); unit != nil {
			t.Errorf("expected no unit for %q, got %+v", text, unit)
		}
	}
}

func TestGenerateProceduralUnit(t *testing.T) {
	text := "using core\n\nmodule App\n\nproperties\ncount\n\ninitialize\n\nfunctions\nRun()\n"

	unit := generateFromText(t, text)
	if unit == nil {
		t.Fatal("expected a unit")
	}

	if unit.DeclarationFileName != "App.h" || unit.DefinitionFileName != "App.c" {
		t.Errorf("unexpected file names %s / %s", unit.DeclarationFileName, unit.DefinitionFileName)
	}

	expectedDecl := "#ifndef APP_H\n#define APP_H\n\n" +
		"#include \"core.h\"\n\n" +
		"extern int count;\n\n" +
		"void App_Function1(void);\n\n" +
		"void App_Initialize(void);\n\n" +
		"#endif /* APP_H */\n"

	if unit.DeclarationText != expectedDecl {
		t.Errorf("declaration mismatch:\n--- expected ---\n%s\n--- got ---\n%s", expectedDecl, unit.DeclarationText)
	}

	def := unit.DefinitionText
	if !strings.HasPrefix(def, "#include \"App.h\"\n") {
		t.Errorf("definition must include the declaration file, got %q", def)
	}

	if !strings.Contains(def, "int count;\n") {
		t.Errorf("expected property storage definition, got %q", def)
	}

	// Lifecycle stubs come before function stubs in the definition file.
	initAt := strings.Index(def, "void App_Initialize(void)")
	fnAt := strings.Index(def, "void App_Function1(void)")

	if initAt < 0 || fnAt < 0 || initAt > fnAt {
		t.Errorf("expected lifecycle stub before function stub, got %q", def)
	}

	if !strings.Contains(def, "/* not yet implemented */") {
		t.Errorf("expected stub marker in definition, got %q", def)
	}
}

func TestGenerateProceduralLifecycleGating(t *testing.T) {
	unit := generateFromText(t, "module App\n\nstart\n")

	if strings.Contains(unit.DeclarationText, "App_Initialize") {
		t.Error("initialize prototype must be gated by its presence flag")
	}

	if !strings.Contains(unit.DeclarationText, "void App_Start(void);") {
		t.Error("expected start prototype for a module with a start section")
	}
}

func TestGenerateClassUnitForType(t *testing.T) {
	// Scenario: type with base and two traits.
	text := "type T is object has A, B\n\nfunctions\nDraw()\n"

	unit := generateFromText(t, text)
	if unit == nil {
		t.Fatal("expected a unit")
	}

	if unit.DeclarationFileName != "T.hpp" || unit.DefinitionFileName != "T.cpp" {
		t.Errorf("unexpected file names %s / %s", unit.DeclarationFileName, unit.DefinitionFileName)
	}

	decl := unit.DeclarationText

	if !strings.Contains(decl, "class A;\n") || !strings.Contains(decl, "class B;\n") {
		t.Errorf("expected forward declarations for inherited traits, got %q", decl)
	}

	if !strings.Contains(decl, "class T : public object, public A, public B {") {
		t.Errorf("expected base type followed by traits as public bases, got %q", decl)
	}

	if !strings.Contains(decl, "virtual ~T() = default;") {
		t.Errorf("expected a virtual destructor, got %q", decl)
	}

	if !strings.Contains(decl, "    T() = default;") {
		t.Errorf("expected a default constructor for a type, got %q", decl)
	}

	if !strings.Contains(decl, "virtual void Function1();") {
		t.Errorf("expected an overridable method declaration, got %q", decl)
	}

	if strings.Contains(decl, "= 0;") {
		t.Errorf("type methods must not be pure, got %q", decl)
	}

	def := unit.DefinitionText
	if !strings.Contains(def, "void T::Function1()") || !strings.Contains(def, "// not yet implemented") {
		t.Errorf("expected out-of-line stub body, got %q", def)
	}
}

func TestGenerateClassUnitSimpleType(t *testing.T) {
	// Scenario: a bare type with base object only.
	unit := generateFromText(t, "type MyType is object\n")

	decl := unit.DeclarationText

	if !strings.Contains(decl, "class MyType : public object {") {
		t.Errorf("expected base list without separator artifacts, got %q", decl)
	}

	if !strings.Contains(decl, "virtual ~MyType() = default;") {
		t.Errorf("expected a virtual destructor line, got %q", decl)
	}
}

func TestGenerateClassUnitForTrait(t *testing.T) {
	text := "trait Drawable\n\nfunctions\nDraw()\nResize()\n"

	unit := generateFromText(t, text)

	decl := unit.DeclarationText

	if !strings.Contains(decl, "virtual void Function1() = 0;") ||
		!strings.Contains(decl, "virtual void Function2() = 0;") {
		t.Errorf("trait methods must be pure, got %q", decl)
	}

	if strings.Contains(decl, "    Drawable() = default;") {
		t.Errorf("traits must not declare a constructor, got %q", decl)
	}

	if strings.Contains(decl, "void Initialize();") {
		t.Errorf("traits must not declare lifecycle methods, got %q", decl)
	}

	// Trait definition files contain only the include line.
	if unit.DefinitionText != "#include \"Drawable.hpp\"\n" {
		t.Errorf("expected trait definition to be only the include line, got %q", unit.DefinitionText)
	}
}

func TestGenerateTypeLifecycleDeclarations(t *testing.T) {
	unit := generateFromText(t, "type T is object\n\ninitialize\n\nfinalize\n")

	decl := unit.DeclarationText
	if !strings.Contains(decl, "void Initialize();") || !strings.Contains(decl, "void Finalize();") {
		t.Errorf("expected gated lifecycle declarations, got %q", decl)
	}

	def := unit.DefinitionText
	if !strings.Contains(def, "void T::Initialize()") || !strings.Contains(def, "void T::Finalize()") {
		t.Errorf("expected lifecycle stub bodies, got %q", def)
	}
}

func TestGenerateNestedDeclarations(t *testing.T) {
	text := "type T is object\n\nenums\nColor\n\nrecords\nPoint\n\nproperties\ncount\n"

	unit := generateFromText(t, text)
	decl := unit.DeclarationText

	if !strings.Contains(decl, "    enum class Color {\n    };") {
		t.Errorf("expected a nested enum declaration, got %q", decl)
	}

	if !strings.Contains(decl, "    struct Point {\n    };") {
		t.Errorf("expected a nested record declaration, got %q", decl)
	}

	if !strings.Contains(decl, "    int count;") {
		t.Errorf("expected a member property declaration, got %q", decl)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	texts := []string{
		"module App\n\nproperties\ncount\n\nfunctions\nRun()\nStop()\n",
		"type T is object has A\n\nfunctions\nDraw()\n",
		"trait R\n\nfunctions\nDo()\n",
	}

	for _, text := range texts {
		doc := analyzeText(text)

		first := Generate(doc)
		second := Generate(doc)

		if first == nil || second == nil {
			t.Fatalf("expected units for %q", text)
		}

		if *first != *second {
			t.Errorf("generation is not idempotent for %q", text)
		}
	}
}

func TestGenerateNamesAreScopedPerPass(t *testing.T) {
	// Two documents generated back to back must both start numbering at 1;
	// a process-wide counter would leak state across files.
	first := generateFromText(t, "module A\n\nfunctions\nRun()\n")
	second := generateFromText(t, "module B\n\nfunctions\nWalk()\n")

	if !strings.Contains(first.DeclarationText, "A_Function1") {
		t.Errorf("expected A_Function1, got %q", first.DeclarationText)
	}

	if !strings.Contains(second.DeclarationText, "B_Function1") {
		t.Errorf("expected numbering to restart per pass, got %q", second.DeclarationText)
	}
}

func TestGenerateFallbackNameForHeaderlessName(t *testing.T) {
	doc := analyzeText("module\n")

	unit := Generate(doc)
	if unit == nil {
		t.Fatal("expected a unit")
	}

	if unit.DeclarationFileName != "Unnamed.h" {
		t.Errorf("expected fallback unit name, got %s", unit.DeclarationFileName)
	}
}
