package preview

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"mdflex/internal/logger"
)

// Watcher follows a markdown file on disk and fires a callback when it
// changes. It backs the read-only mode, where the file is edited in
// another program and the preview tracks it. Editors that save via
// rename (temp file then move) generate remove/create pairs, so the
// watch is on the directory rather than the file itself.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	log      logger.Logger
	done     chan struct{}
}

func NewWatcher(path string, onChange func(), log logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path: abs,
		fsw:  fsw,
		log:  log,
		done: make(chan struct{}),
	}
	w.debounce = NewDebouncer(DefaultDebounce, onChange)

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("watcher", "file changed", map[string]interface{}{
				"path": w.path,
				"op":   ev.Op.String(),
			})
			w.debounce.Trigger()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warning("watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})

		case <-w.done:
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Stop()
	return w.fsw.Close()
}
