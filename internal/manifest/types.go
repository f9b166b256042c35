package manifest

import "fmt"

// DefaultFileName is the manifest checked when none is configured.
const DefaultFileName = "Cargo.toml"

// Mode selects how the manifest is searched.
type Mode string

const (
	// ModeText matches name = "<value>" as a substring of the manifest.
	ModeText Mode = "text"
	// ModeStrict parses the manifest and matches [[bin]] names only.
	ModeStrict Mode = "strict"
)

// Warning reports an executable name that the manifest does not declare.
type Warning struct {
	Field    string // vocabulary key, e.g. "executables.gui_name"
	Label    string // human label, e.g. "GUI"
	Value    string // the configured executable name
	Manifest string // manifest path that was checked
}

// Message returns the operator-facing text for the warning.
func (w Warning) Message() string {
	return fmt.Sprintf("%s executable name in vocabulary.toml (%s = %q) does not match %s. Please update [[bin]] name in %s.",
		w.Label, w.Field, w.Value, w.Manifest, w.Manifest)
}

// binary is one executable the vocabulary expects the manifest to declare.
type binary struct {
	field string
	label string
	value string
}

// cargoManifest is the subset of Cargo.toml read in strict mode.
type cargoManifest struct {
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}
