package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

func testConfig() *vocabulary.Config {
	return &vocabulary.Config{
		App: vocabulary.App{
			NameLocalized: "寸止",
			NameEnglish:   "cunzhi",
			Description:   "Stop AI from ending the conversation early",
		},
		Executables: vocabulary.Executables{
			GUIName:       "zhi-gui",
			MCPServerName: "zhi-mcp",
		},
		MCPTools: vocabulary.MCPTools{
			Interaction: vocabulary.Tool{ID: "zhi", Name: "寸止", Description: "Interactive prompt"},
			Memory:      vocabulary.Tool{ID: "ji", Name: "记忆管理", Description: "Global memory"},
			Search:      vocabulary.Tool{ID: "sou", Name: "代码搜索", Description: "Code search"},
		},
		Actions: vocabulary.Actions{
			MemoryAdd:    "记忆",
			MemoryRecall: "回忆",
		},
	}
}

// constDecls parses generated Go source and returns literal constants by
// name and alias constants mapped to the identifier they re-bind.
func constDecls(t *testing.T, src []byte) (literals, aliases map[string]string, pkg string) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "vocabulary_generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}

	literals = map[string]string{}
	aliases = map[string]string{}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			t.Fatalf("unexpected declaration %T", decl)
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			name := vs.Names[0].Name
			switch v := vs.Values[0].(type) {
			case *ast.BasicLit:
				s, err := strconv.Unquote(v.Value)
				if err != nil {
					t.Fatalf("%s: unquoting %s: %v", name, v.Value, err)
				}
				literals[name] = s
			case *ast.Ident:
				aliases[name] = v.Name
			default:
				t.Fatalf("%s: unexpected value %T", name, v)
			}
		}
	}
	return literals, aliases, file.Name.Name
}

func TestRenderGo_Constants(t *testing.T) {
	cfg := testConfig()
	out, err := Render(cfg, Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	literals, aliases, pkg := constDecls(t, out)
	if pkg != DefaultPackage {
		t.Errorf("package = %q, want %q", pkg, DefaultPackage)
	}

	wantLiterals := map[string]string{
		"AppNameLocalized":    cfg.App.NameLocalized,
		"AppNameEnglish":      cfg.App.NameEnglish,
		"AppDescription":      cfg.App.Description,
		"ExecutableGUI":       cfg.Executables.GUIName,
		"ExecutableMCPServer": cfg.Executables.MCPServerName,
		"ToolIDInteraction":   cfg.MCPTools.Interaction.ID,
		"ToolNameInteraction": cfg.MCPTools.Interaction.Name,
		"ToolDescInteraction": cfg.MCPTools.Interaction.Description,
		"ToolIDMemory":        cfg.MCPTools.Memory.ID,
		"ToolNameMemory":      cfg.MCPTools.Memory.Name,
		"ToolDescMemory":      cfg.MCPTools.Memory.Description,
		"ToolIDSearch":        cfg.MCPTools.Search.ID,
		"ToolNameSearch":      cfg.MCPTools.Search.Name,
		"ToolDescSearch":      cfg.MCPTools.Search.Description,
		"ActionMemoryAdd":     cfg.Actions.MemoryAdd,
		"ActionMemoryRecall":  cfg.Actions.MemoryRecall,
	}
	if diff := cmp.Diff(wantLiterals, literals); diff != "" {
		t.Errorf("literal constants mismatch (-want +got):\n%s", diff)
	}

	wantAliases := map[string]string{
		"Name":    "AppNameLocalized",
		"NameEN":  "AppNameEnglish",
		"ToolZhi": "ToolIDInteraction",
		"ToolJi":  "ToolIDMemory",
		"ToolSou": "ToolIDSearch",
	}
	if diff := cmp.Diff(wantAliases, aliases); diff != "" {
		t.Errorf("alias constants mismatch (-want +got):\n%s", diff)
	}
	for alias, target := range aliases {
		if _, ok := literals[target]; !ok {
			t.Errorf("alias %s re-binds undefined constant %s", alias, target)
		}
	}
}

func TestRenderGo_Deterministic(t *testing.T) {
	first, err := Render(testConfig(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Render(testConfig(), Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("render %d differs from the first render", i+1)
		}
	}
}

func TestRenderGo_EscapesSpecialCharacters(t *testing.T) {
	values := []string{
		`He said "hi"`,
		`back\slash`,
		"line one\nline two",
		"tab\tand `backtick`",
		"*/ /* comment markers",
		"  separator",
	}

	for _, v := range values {
		t.Run(strconv.Quote(v), func(t *testing.T) {
			cfg := testConfig()
			cfg.App.Description = v
			cfg.MCPTools.Search.Name = v

			out, err := Render(cfg, Options{})
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			literals, _, _ := constDecls(t, out)
			if literals["AppDescription"] != v {
				t.Errorf("AppDescription = %q, want %q", literals["AppDescription"], v)
			}
			if literals["ToolNameSearch"] != v {
				t.Errorf("ToolNameSearch = %q, want %q", literals["ToolNameSearch"], v)
			}
		})
	}
}

func TestRenderGo_Header(t *testing.T) {
	out, err := Render(testConfig(), Options{Package: "vocab", Source: "config/vocabulary.toml"})
	if err != nil {
		t.Fatal(err)
	}
	firstLine := strings.SplitN(string(out), "\n", 2)[0]
	want := "// Code generated by vocabgen from config/vocabulary.toml. DO NOT EDIT."
	if firstLine != want {
		t.Errorf("header = %q, want %q", firstLine, want)
	}
	if !strings.Contains(string(out), "\npackage vocab\n") {
		t.Error("package clause not rendered")
	}
}

func TestRenderGo_NoAliases(t *testing.T) {
	out, err := Render(testConfig(), Options{NoAliases: true})
	if err != nil {
		t.Fatal(err)
	}
	literals, aliases, _ := constDecls(t, out)
	if len(aliases) != 0 {
		t.Errorf("aliases = %v, want none", aliases)
	}
	if len(literals) != 16 {
		t.Errorf("got %d literal constants, want 16", len(literals))
	}
}

func TestRenderGo_InvalidPackage(t *testing.T) {
	for _, pkg := range []string{"my-vocab", "1abc", "func x"} {
		if _, err := Render(testConfig(), Options{Package: pkg}); err == nil {
			t.Errorf("Render(package %q) expected error, got nil", pkg)
		}
	}
}

func TestRender_NilConfig(t *testing.T) {
	if _, err := Render(nil, Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestRenderJS(t *testing.T) {
	cfg := testConfig()
	cfg.App.Description = `He said "hi"`

	out, err := Render(cfg, Options{Target: TargetJS})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"export const vocabulary = {",
		`"name_zh": "寸止"`,
		`"mcp_tools": {`,
		`export const appName = "寸止";`,
		`export const appDescription = "He said \"hi\"";`,
		`export const guiName = "zhi-gui";`,
		`"id": "ji"`,
		`export const memoryRecallAction = "回忆";`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("JS output missing %q", want)
		}
	}
}

func TestRenderJS_Document(t *testing.T) {
	doc := map[string]interface{}{
		"app":   map[string]interface{}{"name_zh": "寸止"},
		"extra": map[string]interface{}{"theme": "dark"},
	}

	out, err := Render(testConfig(), Options{Target: TargetJS, Document: doc})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	src := string(out)
	if !strings.Contains(src, `"theme": "dark"`) {
		t.Error("vocabulary object should carry keys outside the typed config")
	}
	// Convenience bindings still come from the typed config.
	if !strings.Contains(src, `export const guiName = "zhi-gui";`) {
		t.Error("guiName binding missing")
	}
}

func TestRenderGo_IgnoresDocument(t *testing.T) {
	plain, err := Render(testConfig(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	withDoc, err := Render(testConfig(), Options{Document: map[string]interface{}{"extra": 1}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(plain), string(withDoc)); diff != "" {
		t.Errorf("Go output depends on Document (-plain +with):\n%s", diff)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"go", TargetGo, false},
		{"js", TargetJS, false},
		{"rust", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(TargetGo); got != "vocabulary_generated.go" {
		t.Errorf("FileName(go) = %q", got)
	}
	if got := FileName(TargetJS); got != "vocabulary.js" {
		t.Errorf("FileName(js) = %q", got)
	}
}
