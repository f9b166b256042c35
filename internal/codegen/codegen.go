package codegen

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"github.com/zhi-labs/vocabgen/internal/branding"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Target selects the output language.
type Target string

const (
	TargetGo Target = "go"
	TargetJS Target = "js"
)

// Targets lists every supported target in render order.
var Targets = []Target{TargetGo, TargetJS}

// DefaultPackage is the Go package name used when Options.Package is empty.
const DefaultPackage = "vocabulary"

// Options controls rendering. The zero value renders Go into DefaultPackage.
type Options struct {
	Target    Target
	Package   string // Go package clause
	Source    string // config file name recorded in the header
	NoAliases bool   // omit the compatibility alias block

	// Document is exported as the JS vocabulary object. It is normally
	// vocabulary.Source.Document, so keys Config does not model survive;
	// when nil the Config itself is exported.
	Document map[string]interface{}
}

// templateData is the value handed to the templates.
type templateData struct {
	*vocabulary.Config
	Package   string
	Source    string
	Generator string
	NoAliases bool
	Document  interface{}
}

// toolData feeds the per-tool block of the Go template.
type toolData struct {
	Suffix string
	Role   string
	Tool   vocabulary.Tool
}

// ParseTarget converts a flag value to a Target.
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown target %q (want one of %v)", s, Targets)
}

// FileName returns the fixed output file name for a target.
func FileName(t Target) string {
	switch t {
	case TargetJS:
		return "vocabulary.js"
	default:
		return "vocabulary_generated.go"
	}
}

// Render produces the generated source for cfg. Identical inputs always
// produce identical bytes.
func Render(cfg *vocabulary.Config, opts Options) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rendering vocabulary: nil config")
	}
	opts = withDefaults(opts)

	data := templateData{
		Config:    cfg,
		Package:   opts.Package,
		Source:    opts.Source,
		Generator: branding.CLIName(),
		NoAliases: opts.NoAliases,
		Document:  cfg,
	}
	if opts.Document != nil {
		data.Document = opts.Document
	}

	switch opts.Target {
	case TargetGo:
		if !token.IsIdentifier(opts.Package) {
			return nil, fmt.Errorf("invalid Go package name %q", opts.Package)
		}
		out, err := execute(data, "go.tmpl", "templates/go.tmpl", "templates/aliases.go.tmpl")
		if err != nil {
			return nil, err
		}
		formatted, err := format.Source(out)
		if err != nil {
			return nil, fmt.Errorf("generated Go source does not parse: %w", err)
		}
		return formatted, nil
	case TargetJS:
		return execute(data, "js.tmpl", "templates/js.tmpl")
	default:
		return nil, fmt.Errorf("unknown target %q", opts.Target)
	}
}

func withDefaults(opts Options) Options {
	if opts.Target == "" {
		opts.Target = TargetGo
	}
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if opts.Source == "" {
		opts.Source = vocabulary.DefaultFileName
	}
	return opts
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
	"json":  jsonLiteral,
	"tool": func(suffix, role string, t vocabulary.Tool) toolData {
		return toolData{Suffix: suffix, Role: role, Tool: t}
	},
}

// execute parses the named template files and runs the entry template.
func execute(data templateData, entry string, files ...string) ([]byte, error) {
	tmpl, err := template.New(entry).Funcs(funcs).ParseFS(templateFS, files...)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", entry, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", entry, err)
	}
	return buf.Bytes(), nil
}

// jsonLiteral encodes v as indented JSON, which is also a valid JavaScript
// expression. encoding/json escapes U+2028 and U+2029.
func jsonLiteral(v interface{}) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
