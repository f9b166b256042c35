package generate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

// StampFileName is written next to the generated files.
const StampFileName = ".vocabgen.stamp"

// Stamp records what the last successful run generated.
type Stamp struct {
	Fingerprint string            `json:"fingerprint"`
	Config      string            `json:"config"`
	Files       []string          `json:"files"`
	Digests     map[string]string `json:"digests"` // file name -> hex SHA-256 of its content
	GeneratedAt time.Time         `json:"generated_at"`
}

// LoadStamp reads the stamp from dir.
// Returns nil, nil if the stamp does not exist (first run).
func LoadStamp(dir string) (*Stamp, error) {
	path := filepath.Join(dir, StampFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading stamp: %w", err)
	}

	var s Stamp
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing stamp: %w", err)
	}
	return &s, nil
}

// SaveStamp writes the stamp to dir.
func SaveStamp(dir string, s *Stamp) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stamp: %w", err)
	}

	path := filepath.Join(dir, StampFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing stamp: %w", err)
	}
	return nil
}

// IsCurrent reports whether s matches fingerprint and every file it lists
// is still in dir with the content that was generated.
func IsCurrent(s *Stamp, fingerprint, dir string) bool {
	if s == nil || s.Fingerprint != fingerprint || len(s.Files) == 0 {
		return false
	}
	for _, name := range s.Files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || vocabulary.Digest(data) != s.Digests[name] {
			return false
		}
	}
	return true
}

// fingerprint hashes everything that influences the generated bytes.
func fingerprint(configDigest string, opts Options) string {
	targets := make([]string, len(opts.Targets))
	for i, t := range opts.Targets {
		targets[i] = string(t)
	}

	h := sha256.New()
	for _, part := range []string{
		configDigest,
		strings.Join(targets, ","),
		opts.Package,
		filepath.Base(opts.ConfigPath),
		strconv.FormatBool(opts.NoAliases),
		opts.GeneratorVersion,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
