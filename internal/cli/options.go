package cli

import (
	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/codegen"
	"github.com/zhi-labs/vocabgen/internal/config"
	"github.com/zhi-labs/vocabgen/internal/generate"
	"github.com/zhi-labs/vocabgen/internal/manifest"
)

// addSourceFlags registers the flags that locate the inputs.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Vocabulary file (default: vocabulary.toml)")
	cmd.Flags().String("manifest", "", "Build manifest to check executable names against (default: Cargo.toml)")
	cmd.Flags().Bool("strict-manifest", false, "Match only [[bin]] names instead of any name = \"...\" line")
}

// addOutputFlags registers the flags that shape generated output.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("package", "", "Go package name of the generated file (default: vocabulary)")
	cmd.Flags().Bool("no-aliases", false, "Omit the compatibility alias constants")
}

// addPipelineFlags registers everything generate and watch accept.
func addPipelineFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	addOutputFlags(cmd)
	cmd.Flags().String("out-dir", "", "Directory for generated files (default: vocabulary)")
	cmd.Flags().StringSlice("targets", nil, "Targets to generate: go, js (default: go)")
}

func manifestMode(s config.Settings) manifest.Mode {
	if s.StrictManifest {
		return manifest.ModeStrict
	}
	return manifest.ModeText
}

func parseTargets(names []string) ([]codegen.Target, error) {
	var targets []codegen.Target
	seen := map[codegen.Target]bool{}
	for _, name := range names {
		t, err := codegen.ParseTarget(name)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			targets = append(targets, t)
		}
	}
	return targets, nil
}

// pipelineOptions resolves settings into generate.Options.
func pipelineOptions(force bool) (generate.Options, error) {
	s := config.Current()
	targets, err := parseTargets(s.Targets)
	if err != nil {
		return generate.Options{}, err
	}
	return generate.Options{
		ConfigPath:       s.ConfigPath,
		ManifestPath:     s.ManifestPath,
		ManifestMode:     manifestMode(s),
		OutDir:           s.OutDir,
		Package:          s.Package,
		Targets:          targets,
		NoAliases:        s.NoAliases,
		Force:            force,
		GeneratorVersion: buildVersion,
		Logger:           logger,
	}, nil
}
