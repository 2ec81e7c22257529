package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/sill"
	"github.com/aretw0/sill/internal/presentation/tui"
)

// debounceDelay coalesces editor save bursts into a single re-check.
const debounceDelay = 100 * time.Millisecond

// RunWatch runs the check in development mode, re-checking whenever the
// schema file or one of the env files changes. It returns when interrupted.
func RunWatch(opts CheckOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Debug)
	tui.PrintBanner(sill.Version)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the parent directories and
	// filter events down to the paths we care about.
	targets := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range append([]string{opts.SchemaPath}, opts.EnvFiles...) {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			logger.Warn("failed to watch directory", "dir", dir, "error", err)
		}
	}

	logger.Info("starting watcher", "schema", opts.SchemaPath, "env_files", len(opts.EnvFiles))
	runWatchCheck(opts, out)

	recheck := make(chan struct{}, 1)
	var debounce *time.Timer
	lastChanged := ""

	for {
		select {
		case <-sigCtx.Done():
			fmt.Fprintln(out)
			printSystemMessage(out, "Watcher stopped.")
			logger.Info("stopping watcher", "signal", sigCtx.Signal())
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			lastChanged = filepath.Base(event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case recheck <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)

		case <-recheck:
			printSystemMessage(out, "Change detected in '%s'.", lastChanged)
			runWatchCheck(opts, out)
		}
	}
}

// runWatchCheck runs one check iteration. Failures never stop the loop:
// the point of watch mode is to keep reporting until the files are fixed.
func runWatchCheck(opts CheckOptions, out io.Writer) {
	if err := RunCheck(opts); err != nil && !errors.Is(err, ErrEnvironmentInvalid) {
		printSystemMessage(out, "Error: %v", err)
	}
	printSystemMessage(out, "Waiting for changes...")
}
