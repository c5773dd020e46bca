// Package watch revalidates the corpus whenever its files change.
//
// Editors emit bursts of filesystem events for a single save, so events
// are debounced before revalidating. Whether a settled burst actually
// changed the corpus is the caller's call: the validate loop compares
// the snapshot checksum and skips re-reporting when only formatting
// moved.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/qdocs/demolint/pkg/demolint"
)

// Options configures a watch loop.
type Options struct {
	// Debounce is how long to wait after the last event before
	// revalidating. Zero means demolint.DefaultWatchDebounce.
	Debounce time.Duration

	Logger demolint.Logger
}

// Run watches root recursively and calls revalidate after each settled
// burst of filesystem events, plus once at startup. It blocks until ctx
// is cancelled. Errors from revalidate are logged, not fatal: a watch
// session outlives a broken intermediate state of the corpus.
func Run(ctx context.Context, root string, opts Options, revalidate func() error) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = demolint.DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, root); err != nil {
		return err
	}

	if err := revalidate(); err != nil {
		opts.Logger.Error("validation failed: %v", err)
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			opts.Logger.Verbose("fs event: %s", event)

			// New directories need their own watch before files inside
			// them produce events.
			if event.Op.Has(fsnotify.Create) {
				if err := addRecursive(watcher, event.Name); err != nil {
					opts.Logger.Verbose("cannot watch %s: %v", event.Name, err)
				}
			}

			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Error("watch error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil
			if err := revalidate(); err != nil {
				opts.Logger.Error("validation failed: %v", err)
			}
		}
	}
}

// addRecursive watches path and every directory below it. Non-directory
// paths are ignored; fsnotify watches their parent already.
func addRecursive(watcher *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(p)
	})
}
