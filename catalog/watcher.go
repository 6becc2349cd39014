package catalog

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a store's catalog when its file changes on disk. The
// reload goes through Store.Reload, so a broken edit never evicts the
// serving catalog. Watching is opt-in; per-call validation never touches
// the filesystem.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher creates a watcher for the store's catalog file.
func NewWatcher(store *Store, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(store.Path()); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{store: store, watcher: fw, logger: logger}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, okCh := <-w.watcher.Events:
			if !okCh {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("rule catalog file changed", slog.String("path", event.Name))
			if _, err := w.store.Reload(); err != nil {
				// Reload already logged; keep watching.
				continue
			}
		case err, okCh := <-w.watcher.Errors:
			if !okCh {
				return nil
			}
			w.logger.Warn("catalog watcher error", slog.String("error", err.Error()))
		}
	}
}
