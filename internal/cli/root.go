package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/branding"
	"github.com/zhi-labs/vocabgen/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	settingsFile string
	verbose      bool
	logger       = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "Settings file (default: ./"+config.FileName()+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads vocabulary.toml, checks executable names against the build
manifest and generates a source file of string constants for the application.

Typical use is a go:generate directive next to the generated package:

  //go:generate ` + branding.CLIName() + ` generate

Settings are read from ./` + config.FileName() + ` and from environment variables
such as ` + branding.EnvVar("out_dir") + `; flags take precedence over both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l

		if err := config.Load(settingsFile); err != nil {
			return err
		}
		if err := config.BindFlags(cmd.Flags()); err != nil {
			return err
		}
		return config.CheckGeneratorVersion(config.Get(config.KeyGeneratorVersion), buildVersion)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// newLogger builds the build-log logger: human-readable lines on stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
