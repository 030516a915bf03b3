package levels

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentKind classifies a changed file.
type ContentKind int

const (
	ContentOther ContentKind = iota
	ContentLevel
	ContentPrefab
	ContentScript
)

// Change is a debounced notification that a content file was written.
type Change struct {
	Path string
	Kind ContentKind
}

// Watcher reports edits to level and prefab files. The game loop drains
// Changes between ticks; nothing else runs on the watcher goroutine.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Pending returns the changes queued so far without blocking.
func (w *Watcher) Pending() []Change {
	var out []Change
	for {
		select {
		case c := <-w.Changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind := ClassifyContent(event.Name)
			if kind == ContentOther {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changes <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func ClassifyContent(path string) ContentKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".tmx":
		return ContentLevel
	case ".yaml", ".yml":
		return ContentPrefab
	case ".tengo":
		return ContentScript
	}
	return ContentOther
}
