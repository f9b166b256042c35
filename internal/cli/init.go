package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/branding"
	"github.com/zhi-labs/vocabgen/internal/scaffold"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	initName string
	initDir  string
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Application name (default: current directory name)")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to write the starter files into")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter vocabulary.toml and settings file",
	Long: `Write a vocabulary.toml with every required key and a settings file with
the default generator options. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := resolveInitName()
		if err != nil {
			return err
		}
		if err := validateName(name); err != nil {
			return err
		}

		result, err := scaffold.Generate(scaffold.NewScaffoldData(name), initDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created in %s:\n", result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", w)
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit vocabulary.toml")
		fmt.Fprintf(out, "  2. Add '//go:generate %s generate' to a file in your module\n", branding.CLIName())
		fmt.Fprintln(out, "  3. Run 'go generate ./...'")
		return nil
	},
}

func resolveInitName() (string, error) {
	if initName != "" {
		return initName, nil
	}
	dir, err := filepath.Abs(initDir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	if _, err := os.Stat(dir); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	return filepath.Base(dir), nil
}

// validateName checks that a name is lowercase alphanumeric with hyphens.
func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must be lowercase alphanumeric with hyphens (e.g., my-app)", name)
	}
	return nil
}
