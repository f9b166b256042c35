package cli

import (
	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema that vocabulary.toml is validated against",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(vocabulary.Schema())
		return err
	},
}
