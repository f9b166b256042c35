package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/zhi-labs/vocabgen/internal/codegen"
	"github.com/zhi-labs/vocabgen/internal/manifest"
	"github.com/zhi-labs/vocabgen/internal/vocabulary"
	"go.uber.org/zap"
)

// Options configures one pipeline run.
type Options struct {
	ConfigPath       string
	ManifestPath     string // empty skips the sync check
	ManifestMode     manifest.Mode
	OutDir           string
	Package          string
	Targets          []codegen.Target
	NoAliases        bool
	Force            bool   // regenerate even if the stamp is current
	GeneratorVersion string // recorded in the fingerprint
	Logger           *zap.Logger
}

// Result describes what a run did.
type Result struct {
	Files    []string // paths written, or the current files when Skipped
	Warnings []manifest.Warning
	Skipped  bool
}

// Run executes the pipeline once. Only configuration and output errors are
// returned; manifest problems are logged and reported in Result.Warnings.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(opts.Targets) == 0 {
		opts.Targets = []codegen.Target{codegen.TargetGo}
	}

	src, err := vocabulary.LoadSource(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded vocabulary", zap.String("config", src.Path), zap.String("digest", src.Digest))

	result := &Result{Warnings: CheckManifest(src.Config, opts.ManifestPath, opts.ManifestMode, logger)}

	fp := fingerprint(src.Digest, opts)
	if !opts.Force {
		stamp, err := LoadStamp(opts.OutDir)
		if err != nil {
			logger.Debug("Ignoring unreadable stamp", zap.Error(err))
		}
		if IsCurrent(stamp, fp, opts.OutDir) {
			for _, name := range stamp.Files {
				result.Files = append(result.Files, filepath.Join(opts.OutDir, name))
			}
			result.Skipped = true
			logger.Info("Vocabulary up to date", zap.String("out_dir", opts.OutDir))
			return result, nil
		}
	}

	// Render everything before touching the output directory.
	rendered := make([][]byte, len(opts.Targets))
	for i, target := range opts.Targets {
		out, err := codegen.Render(src.Config, codegen.Options{
			Target:    target,
			Package:   opts.Package,
			Source:    filepath.Base(src.Path),
			NoAliases: opts.NoAliases,
			Document:  src.Document,
		})
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", target, err)
		}
		rendered[i] = out
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stamp := &Stamp{
		Fingerprint: fp,
		Config:      src.Path,
		Digests:     make(map[string]string, len(opts.Targets)),
		GeneratedAt: time.Now().UTC(),
	}
	for i, target := range opts.Targets {
		name := codegen.FileName(target)
		path, err := codegen.Write(opts.OutDir, name, rendered[i])
		if err != nil {
			return nil, err
		}
		stamp.Files = append(stamp.Files, name)
		stamp.Digests[name] = vocabulary.Digest(rendered[i])
		result.Files = append(result.Files, path)
	}

	if err := SaveStamp(opts.OutDir, stamp); err != nil {
		// Outputs are already in place; the next run regenerates.
		logger.Warn("Could not record stamp", zap.Error(err))
	}

	logger.Info("Vocabulary configuration loaded successfully",
		zap.String("config", src.Path),
		zap.Strings("files", result.Files))
	return result, nil
}

// CheckManifest runs the advisory manifest check and logs each warning.
// An empty path or an unreadable manifest skips the check.
func CheckManifest(cfg *vocabulary.Config, path string, mode manifest.Mode, logger *zap.Logger) []manifest.Warning {
	if path == "" {
		return nil
	}
	warnings, err := manifest.Check(cfg, path, mode)
	if err != nil {
		logger.Debug("Skipping manifest check", zap.String("manifest", path), zap.Error(err))
		return nil
	}
	for _, w := range warnings {
		logger.Warn(w.Message(),
			zap.String("field", w.Field),
			zap.String("value", w.Value),
			zap.String("manifest", w.Manifest))
	}
	return warnings
}
