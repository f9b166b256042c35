package cli

import (
	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/generate"
)

var generateForce bool

func init() {
	addPipelineFlags(generateCmd)
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Regenerate even if inputs are unchanged")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate vocabulary constants",
	Long: `Load vocabulary.toml, check executable names against the build manifest and
write the generated constants to the output directory.

The run is skipped when neither the vocabulary nor the generation options
changed since the last run. Manifest mismatches are reported as warnings and
never fail the command.

Examples:
  vocabgen generate
  vocabgen generate --out-dir internal/vocabulary --targets go,js
  vocabgen generate --config ../vocabulary.toml --manifest ../Cargo.toml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pipelineOptions(generateForce)
		if err != nil {
			return err
		}
		_, err = generate.Run(cmd.Context(), opts)
		return err
	},
}
