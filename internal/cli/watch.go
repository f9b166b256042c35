package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zhi-labs/vocabgen/internal/generate"
	"github.com/zhi-labs/vocabgen/internal/watch"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

func init() {
	addPipelineFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Wait this long after the last change before regenerating")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever vocabulary.toml or the manifest changes",
	Long: `Generate once, then keep watching the vocabulary and manifest files and
regenerate after every change. Errors are logged and watching continues.
Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pipelineOptions(false)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		run := func(ctx context.Context) error {
			_, err := generate.Run(ctx, opts)
			return err
		}
		if err := run(ctx); err != nil {
			logger.Error("Initial generation failed", zap.Error(err))
		}

		files := []string{opts.ConfigPath}
		if opts.ManifestPath != "" {
			files = append(files, opts.ManifestPath)
		}
		logger.Info("Watching for changes", zap.Strings("files", files))

		return watch.Run(ctx, watch.Config{
			Files:    files,
			Debounce: watchDebounce,
			Logger:   logger,
		}, run)
	},
}
