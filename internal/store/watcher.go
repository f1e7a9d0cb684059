package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change observed on the config file.
type Op uint8

const (
	// OpWrite means the file contents changed.
	OpWrite Op = iota
	// OpCreate means the file appeared, including editor save-by-rename.
	OpCreate
	// OpRemove means the file was deleted.
	OpRemove
	// OpRename means the file was moved away.
	OpRename
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is one observed change to the config file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher reports changes to a single config file. It watches the file's
// directory rather than the file itself so that save-by-rename, the way
// most editors write, is still observed.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan Event
	errs   chan error

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// Watch starts watching the config file at path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(resolve(path))
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan Event, 16),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events returns the change channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	close(w.events)
	close(w.errs)
	return err
}

// loop filters directory events down to the watched file.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			op, ok := convertOp(ev.Op)
			if !ok {
				continue
			}
			select {
			case w.events <- Event{Path: w.path, Op: op, Time: time.Now()}:
			default:
				// Channel full, drop event. The consumer rereads the
				// whole file anyway.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// convertOp maps an fsnotify operation to an Op.
func convertOp(fsOp fsnotify.Op) (Op, bool) {
	switch {
	case fsOp.Has(fsnotify.Write):
		return OpWrite, true
	case fsOp.Has(fsnotify.Create):
		return OpCreate, true
	case fsOp.Has(fsnotify.Remove):
		return OpRemove, true
	case fsOp.Has(fsnotify.Rename):
		return OpRename, true
	default:
		return 0, false
	}
}
