package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/config"
	"github.com/zhi-labs/vocabgen/internal/generate"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

func init() {
	addSourceFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate vocabulary.toml without generating anything",
	Long: `Load and validate vocabulary.toml, then check executable names against the
build manifest. Exits non-zero only if the vocabulary itself is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Current()
		cfg, err := vocabulary.Load(s.ConfigPath)
		if err != nil {
			return err
		}

		warnings := generate.CheckManifest(cfg, s.ManifestPath, manifestMode(s), logger)
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d manifest warning(s))\n", s.ConfigPath, len(warnings))
		return nil
	},
}
