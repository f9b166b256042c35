package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"github.com/zhi-labs/vocabgen/internal/branding"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

const scaffoldsDir = "scaffolds"

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	Name          string // e.g., "cunzhi"
	NameLocalized string // defaults to Name
	Description   string
	GUIName       string // Derived: <name>-gui
	MCPServerName string // Derived: <name>-mcp
	OutDir        string // generated code directory
	Package       string // generated Go package
	Generator     string
	EnvPrefix     string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(name string) *ScaffoldData {
	return &ScaffoldData{
		Name:          name,
		NameLocalized: name,
		Description:   fmt.Sprintf("%s application", name),
		GUIName:       name + "-gui",
		MCPServerName: name + "-mcp",
		OutDir:        "vocabulary",
		Package:       "vocabulary",
		Generator:     branding.CLIName(),
		EnvPrefix:     branding.EnvPrefix(),
	}
}

// Generate writes every starter file into outputDir. Existing files are
// never overwritten; the call fails before writing anything if one exists.
func Generate(data *ScaffoldData, outputDir string) (*Result, error) {
	entries, err := fs.ReadDir(scaffoldFS, scaffoldsDir)
	if err != nil {
		return nil, fmt.Errorf("reading scaffolds: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	for _, entry := range entries {
		outPath := filepath.Join(outputDir, strings.TrimSuffix(entry.Name(), ".tmpl"))
		if _, err := os.Stat(outPath); err == nil {
			return nil, fmt.Errorf("%s already exists; remove it first", outPath)
		}
	}

	result := &Result{
		OutputDir: outputDir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(scaffoldFS, path.Join(scaffoldsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Funcs(template.FuncMap{"quote": tomlString}).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	// Validate the generated vocabulary against the schema.
	vocabFile := filepath.Join(outputDir, vocabulary.DefaultFileName)
	if raw, err := os.ReadFile(vocabFile); err == nil {
		valResult, valErr := vocabulary.Validate(raw)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate %s: %v", vocabulary.DefaultFileName, valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				result.Warnings = append(result.Warnings, issue.String())
			}
		}
	}

	return result, nil
}

// tomlString encodes s as a TOML string value.
func tomlString(s string) (string, error) {
	out, err := toml.Marshal(map[string]string{"v": s})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimPrefix(string(out), "v = ")), nil
}
