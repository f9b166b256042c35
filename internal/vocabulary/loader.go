package vocabulary

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("vocabulary config not found")

// Load reads, parses and validates the configuration at path.
func Load(path string) (*Config, error) {
	src, err := LoadSource(path)
	if err != nil {
		return nil, err
	}
	return src.Config, nil
}

// LoadSource is Load plus the raw bytes and their digest. The digest changes
// whenever the file content changes and is what callers key regeneration on.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (create %s in the project root or pass --config)",
				ErrNotFound, path, filepath.Base(path))
		}
		return nil, fmt.Errorf("reading vocabulary config %s: %w", path, err)
	}

	cfg, doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary config %s: %w", path, err)
	}

	return &Source{
		Path:     path,
		Raw:      data,
		Digest:   Digest(data),
		Config:   cfg,
		Document: doc,
	}, nil
}

// Decode parses TOML bytes into a Config. Every field is required; a
// missing or mistyped field yields a *SchemaError.
func Decode(data []byte) (*Config, error) {
	cfg, _, err := decode(data)
	return cfg, err
}

// decode returns the typed Config and the full document it was read from.
func decode(data []byte) (*Config, map[string]interface{}, error) {
	doc := map[string]interface{}{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, syntaxError(err)
	}

	result, err := validateTree(doc)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, nil, &SchemaError{Issues: result.Issues}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("decoding vocabulary: %w", err)
	}
	return &cfg, doc, nil
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// syntaxError adds the line and column to go-toml decode errors.
func syntaxError(err error) error {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Errorf("invalid TOML at line %d, column %d: %w", row, col, err)
	}
	return fmt.Errorf("invalid TOML: %w", err)
}
