package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to a scenario file so the TUI can reload it
// live. Events carries the path of the changed file.
type Watcher struct {
	fw     *fsnotify.Watcher
	Events chan string
	done   chan struct{}
}

// Watch starts watching the directory containing path. Watching the
// directory instead of the file survives editors that replace the file
// on save.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scenario: cannot create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("scenario: cannot watch %s: %w", dir, err)
	}

	w := &Watcher{
		fw:     fw,
		Events: make(chan string, 1),
		done:   make(chan struct{}),
	}
	go w.loop(filepath.Clean(path))
	return w, nil
}

func (w *Watcher) loop(target string) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target && !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Drop the event when the consumer is behind; the next save
			// will fire again.
			select {
			case w.Events <- ev.Name:
			default:
			}
		case <-w.fw.Errors:
			// Watch errors are not actionable mid-session; keep running.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
