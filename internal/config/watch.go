package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/niri-panel/internal/logging"
	"github.com/atomicstack/niri-panel/internal/logging/events"
	"github.com/atomicstack/niri-panel/internal/mainloop"
)

// Editors save in bursts of writes and renames. Reloads wait for this much
// quiet before touching the file.
const quietPeriod = 250 * time.Millisecond

// Watcher follows the config file on disk and posts reloads onto the loop.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchPanel watches the config file's directory, so atomic rename-replace
// saves are seen too. Every successful reload is handed to onChange on the
// loop; a file that fails to parse keeps the previous configuration.
func WatchPanel(path string, loop *mainloop.Loop, onChange func(PanelConfig)) (*Watcher, error) {
	if path == "" {
		path = DefaultPanelPath()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	w := &Watcher{path: path, watcher: fw, done: make(chan struct{})}
	go w.run(loop, onChange)
	return w, nil
}

// Close stops the watcher. The goroutine exits once the event channel
// drains.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Wait blocks until the watcher goroutine has exited.
func (w *Watcher) Wait() {
	<-w.done
}

func (w *Watcher) run(loop *mainloop.Loop, onChange func(PanelConfig)) {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			pending = time.After(quietPeriod)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error(fmt.Errorf("config watcher: %w", err))
		case <-pending:
			pending = nil
			cfg, err := LoadPanel(w.path)
			if err != nil {
				logging.Error(fmt.Errorf("reload config: %w", err))
				continue
			}
			events.App.ConfigReloaded(w.path)
			loop.Post(func() { onChange(cfg) })
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
