// Package watch reruns a callback whenever one of a fixed set of files
// changes on disk. Events are debounced so that editors which write a file
// in several steps trigger a single rerun.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Config configures the watcher.
type Config struct {
	// Files to watch. Their parent directories are watched so that
	// rename-on-save editors are seen too.
	Files []string

	// Debounce is how long to wait for more changes before calling back.
	Debounce time.Duration

	Logger *zap.Logger
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of changes to any watched file. Errors from onChange are logged and do not
// stop the watcher.
func Run(ctx context.Context, cfg Config, onChange func(ctx context.Context) error) error {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	watched := make(map[string]bool, len(cfg.Files))
	dirs := make(map[string]bool)
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", f, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logger.Debug("Watching directory", zap.String("path", dir))
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event, watched) {
				continue
			}
			logger.Debug("File changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				logger.Error("Regeneration failed", zap.Error(err))
			}
		}
	}
}

func relevant(event fsnotify.Event, watched map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return watched[abs]
}
