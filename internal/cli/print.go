package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/codegen"
	"github.com/zhi-labs/vocabgen/internal/config"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
)

var printTarget string

func init() {
	printCmd.Flags().String("config", "", "Vocabulary file (default: vocabulary.toml)")
	addOutputFlags(printCmd)
	printCmd.Flags().StringVar(&printTarget, "target", string(codegen.TargetGo), "Target to render: go or js")
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render generated source to stdout",
	Long:  `Render one target to stdout without writing files or checking the manifest.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := codegen.ParseTarget(printTarget)
		if err != nil {
			return err
		}

		s := config.Current()
		src, err := vocabulary.LoadSource(s.ConfigPath)
		if err != nil {
			return err
		}

		out, err := codegen.Render(src.Config, codegen.Options{
			Target:    target,
			Package:   s.Package,
			Source:    filepath.Base(s.ConfigPath),
			NoAliases: s.NoAliases,
			Document:  src.Document,
		})
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
