// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks edit the YAML rather than the Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	SettingsFile string `yaml:"settings_file"`
	GoModule     string `yaml:"go_module"`
}

// fallback is used for any key branding.yaml leaves out.
var fallback = brand{
	CLIName:      "vocabgen",
	DisplayName:  "VocabGen",
	Description:  "Build-time generator for application vocabulary constants",
	EnvPrefix:    "VOCABGEN",
	SettingsFile: "vocabgen",
	GoModule:     "github.com/zhi-labs/vocabgen",
}

// current parses the embedded file once. A malformed file keeps the
// fallback values.
var current = sync.OnceValue(func() brand {
	b := fallback
	if err := yaml.Unmarshal(rawBranding, &b); err != nil {
		return fallback
	}
	return b
})

// CLIName returns the root command name (e.g., "vocabgen").
func CLIName() string { return current().CLIName }

// DisplayName returns the human-readable product name (e.g., "VocabGen").
func DisplayName() string { return current().DisplayName }

// Description returns the short product description.
func Description() string { return current().Description }

// EnvPrefix returns the environment variable prefix (e.g., "VOCABGEN").
func EnvPrefix() string { return current().EnvPrefix }

// SettingsFile returns the base name (no extension) of the optional project
// settings file, e.g. "vocabgen" for ./vocabgen.yaml.
func SettingsFile() string { return current().SettingsFile }

// GoModule returns the Go module path of this tool, reported by
// "version --json".
func GoModule() string { return current().GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("OUT_DIR") → "VOCABGEN_OUT_DIR".
func EnvVar(suffix string) string {
	return EnvPrefix() + "_" + strings.ToUpper(suffix)
}
