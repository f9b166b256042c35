package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	if err := Load(""); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s := Current()
	if s.ConfigPath != "vocabulary.toml" {
		t.Errorf("ConfigPath = %q", s.ConfigPath)
	}
	if s.ManifestPath != "Cargo.toml" {
		t.Errorf("ManifestPath = %q", s.ManifestPath)
	}
	if len(s.Targets) != 1 || s.Targets[0] != "go" {
		t.Errorf("Targets = %v, want [go]", s.Targets)
	}
	if s.StrictManifest {
		t.Error("StrictManifest should default to false")
	}
}

func TestLoad_SettingsFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)

	content := `out_dir: internal/vocab
package: vocab
targets:
  - go
  - js
strict_manifest: true
`
	if err := os.WriteFile(filepath.Join(dir, FileName()), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Load(""); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s := Current()
	if s.OutDir != "internal/vocab" {
		t.Errorf("OutDir = %q", s.OutDir)
	}
	if s.Package != "vocab" {
		t.Errorf("Package = %q", s.Package)
	}
	if len(s.Targets) != 2 || s.Targets[1] != "js" {
		t.Errorf("Targets = %v, want [go js]", s.Targets)
	}
	if !s.StrictManifest {
		t.Error("StrictManifest should be true")
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	resetViper(t)
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit settings file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, FileName()), []byte("package: fromfile\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOCABGEN_PACKAGE", "fromenv")
	t.Setenv("VOCABGEN_TARGETS", "go,js")

	if err := Load(""); err != nil {
		t.Fatal(err)
	}
	s := Current()
	if s.Package != "fromenv" {
		t.Errorf("Package = %q, want %q", s.Package, "fromenv")
	}
	if len(s.Targets) != 2 {
		t.Errorf("Targets = %v, want [go js]", s.Targets)
	}
}

func TestBindFlags_OverrideEnv(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("VOCABGEN_OUT_DIR", "fromenv")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("out-dir", "", "")
	fs.Bool("strict-manifest", false, "")
	if err := fs.Parse([]string{"--out-dir", "fromflag", "--strict-manifest"}); err != nil {
		t.Fatal(err)
	}

	if err := Load(""); err != nil {
		t.Fatal(err)
	}
	if err := BindFlags(fs); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}
	s := Current()
	if s.OutDir != "fromflag" {
		t.Errorf("OutDir = %q, want %q", s.OutDir, "fromflag")
	}
	if !s.StrictManifest {
		t.Error("StrictManifest flag not applied")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"go, js", "", "ts"})
	want := []string{"go", "js", "ts"}
	if len(got) != len(want) {
		t.Fatalf("splitList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
