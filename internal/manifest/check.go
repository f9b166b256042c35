package manifest

import (
	"slices"
	"strings"

	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

// Check compares the configured executable names with the manifest at path.
//
// It returns one Warning per name the manifest does not declare. A non-nil
// error means the manifest could not be read and the check was skipped;
// callers treat it as advisory. In ModeStrict a manifest that is not valid
// TOML is searched textually instead.
func Check(cfg *vocabulary.Config, path string, mode Mode) ([]Warning, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	declared := textMatcher(string(data))
	if mode == ModeStrict {
		if names, err := ParseBinaries(data); err == nil {
			declared = func(name string) bool { return slices.Contains(names, name) }
		}
	}

	var warnings []Warning
	for _, b := range expectedBinaries(cfg) {
		if declared(b.value) {
			continue
		}
		warnings = append(warnings, Warning{
			Field:    b.field,
			Label:    b.label,
			Value:    b.value,
			Manifest: path,
		})
	}
	return warnings, nil
}

func textMatcher(content string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(content, declarationPattern(name))
	}
}

func expectedBinaries(cfg *vocabulary.Config) []binary {
	return []binary{
		{field: "executables.gui_name", label: "GUI", value: cfg.Executables.GUIName},
		{field: "executables.mcp_server_name", label: "MCP server", value: cfg.Executables.MCPServerName},
	}
}
