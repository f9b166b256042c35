package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseBinaries returns the names of every [[bin]] table in a TOML manifest.
func ParseBinaries(data []byte) ([]string, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	names := make([]string, 0, len(m.Bin))
	for _, b := range m.Bin {
		if b.Name != "" {
			names = append(names, b.Name)
		}
	}
	return names, nil
}

// declarationPattern is the literal text a manifest must contain for name to
// count as declared in text mode.
func declarationPattern(name string) string {
	return `name = "` + name + `"`
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
