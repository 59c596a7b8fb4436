package avatar

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports when any sprite file changes on disk so the UI can
// reload the art without restarting. Edits to the pet are visible on
// the next repaint.
type Watcher struct {
	fs      *fsnotify.Watcher
	log     *zap.Logger
	changed chan struct{}
	done    chan struct{}
}

// WatchSprites watches the given files. Close releases the watcher.
func WatchSprites(paths []string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
	}

	w := &Watcher{
		fs:      fsw,
		log:     log,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug("sprite file changed", zap.String("file", ev.Name))
			select {
			case w.changed <- struct{}{}:
			default: // a reload is already pending
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("sprite watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Changed receives one signal per batch of sprite edits.
func (w *Watcher) Changed() <-chan struct{} { return w.changed }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
