package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zhi-labs/vocabgen/internal/branding"
)

const fileType = "yaml"

// Setting keys. Flags with the same name (underscores as dashes) override them.
const (
	KeyConfig           = "config"
	KeyManifest         = "manifest"
	KeyOutDir           = "out_dir"
	KeyPackage          = "package"
	KeyTargets          = "targets"
	KeyStrictManifest   = "strict_manifest"
	KeyNoAliases        = "no_aliases"
	KeyGeneratorVersion = "generator_version"
)

// Settings is a resolved snapshot of every key.
type Settings struct {
	ConfigPath       string
	ManifestPath     string
	OutDir           string
	Package          string
	Targets          []string
	StrictManifest   bool
	NoAliases        bool
	GeneratorVersion string // semver constraint, e.g. ">=0.2.0"
}

func setDefaults() {
	viper.SetDefault(KeyConfig, "vocabulary.toml")
	viper.SetDefault(KeyManifest, "Cargo.toml")
	viper.SetDefault(KeyOutDir, "vocabulary")
	viper.SetDefault(KeyPackage, "vocabulary")
	viper.SetDefault(KeyTargets, []string{"go"})
	viper.SetDefault(KeyStrictManifest, false)
	viper.SetDefault(KeyNoAliases, false)
	viper.SetDefault(KeyGeneratorVersion, "")
}

// FileName returns the default settings file name (vocabgen.yaml).
func FileName() string {
	return branding.SettingsFile() + "." + fileType
}

// Load initializes Viper from the settings file and environment. With an
// empty path the default file in the working directory is used if present;
// an explicit path must exist.
func Load(path string) error {
	setDefaults()
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(branding.SettingsFile())
		viper.AddConfigPath(".")
	}
	viper.SetConfigType(fileType)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading settings: %w", err)
	}
	return nil
}

// BindFlags makes any flag in fs that corresponds to a setting key override
// the file and environment values.
func BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyConfig, KeyManifest, KeyOutDir, KeyPackage, KeyTargets,
		KeyStrictManifest, KeyNoAliases, KeyGeneratorVersion,
	} {
		flag := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", flag.Name, err)
		}
	}
	return nil
}

// Get returns a setting by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		ConfigPath:       viper.GetString(KeyConfig),
		ManifestPath:     viper.GetString(KeyManifest),
		OutDir:           viper.GetString(KeyOutDir),
		Package:          viper.GetString(KeyPackage),
		Targets:          splitList(viper.GetStringSlice(KeyTargets)),
		StrictManifest:   viper.GetBool(KeyStrictManifest),
		NoAliases:        viper.GetBool(KeyNoAliases),
		GeneratorVersion: viper.GetString(KeyGeneratorVersion),
	}
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
