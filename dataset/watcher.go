package dataset

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/tabulab/cellstate/logging"
)

// Watcher reports changes to a dataset file so the application can
// reload it and rebuild the store's header map. onChange runs on the
// watcher's goroutine; callers must marshal back onto the goroutine
// that owns the store (the TUI does this with a bubbletea message).
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *logrus.Entry
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched rather
// than the file itself so editors that replace the file (write temp,
// rename over) keep triggering events.
func Watch(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		log:     logging.NewLogger("dataset-watcher"),
		done:    make(chan struct{}),
	}

	go func() {
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				w.log.WithField("path", abs).Debug("Dataset file changed")
				onChange()
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.log.WithField("error", err).Warn("Dataset watcher error")
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
