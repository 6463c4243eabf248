// Package watch re-runs work when C/C++ files under a directory change.
//
// A [Watcher] registers every directory below its root with fsnotify,
// skipping excluded directory names, and collects events for files with a
// recognized extension. Events are batched: the handler runs once the tree
// has been quiet for the debounce window, so saving many files at once
// triggers a single rebuild.
package watch

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a batch is delivered.
const DefaultDebounce = 300 * time.Millisecond

// Change is one filesystem event after filtering.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Handler receives a batch of changes, one entry per path, in the order the
// paths first changed. It runs on the watcher's goroutine; no new batch is
// delivered until it returns.
type Handler func(ctx context.Context, changes []Change)

// Options configures a Watcher.
type Options struct {
	Debounce   time.Duration // zero means DefaultDebounce
	Exclude    []string      // directory names never watched
	Extensions []string      // file extensions that trigger a batch
	Logger     *log.Logger
}

// Watcher reports debounced changes below a root directory.
type Watcher struct {
	root    string
	opts    Options
	fs      *fsnotify.Watcher
	changes chan Change
	closed  sync.Once
}

// New creates a watcher for root and registers its directory tree.
func New(root string, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:    root,
		opts:    opts,
		fs:      fw,
		changes: make(chan Change, 256),
	}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closed.Do(func() { err = w.fs.Close() })
	return err
}

// Run delivers batches to h until ctx is cancelled or the watcher is
// closed. Pending changes are dropped on cancellation.
func (w *Watcher) Run(ctx context.Context, h Handler) error {
	go w.readEvents(ctx)

	var (
		batch  []Change
		index  = map[string]int{}
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case c, ok := <-w.changes:
			if !ok {
				return ctx.Err()
			}
			if i, seen := index[c.Path]; seen {
				batch[i] = c
			} else {
				index[c.Path] = len(batch)
				batch = append(batch, c)
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.opts.Debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil
			pending := batch
			batch, index = nil, map[string]int{}
			h(ctx, pending)
		}
	}
}

func (w *Watcher) readEvents(ctx context.Context) {
	defer close(w.changes)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				if w.excluded(ev.Name) || slices.Contains(w.opts.Exclude, filepath.Base(ev.Name)) {
					continue
				}
				if err := w.addTree(ev.Name); err != nil {
					w.opts.Logger.Warn("watch directory", "path", ev.Name, "error", err)
				}
				w.send(ctx, Change{Path: ev.Name, Op: ev.Op})
				continue
			}
			if w.relevant(ev) {
				w.send(ctx, Change{Path: ev.Name, Op: ev.Op})
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) send(ctx context.Context, c Change) {
	select {
	case w.changes <- c:
	case <-ctx.Done():
	}
}

// relevant reports whether ev should trigger a rebuild. Removals and
// renames of extensionless paths count because they may be directories
// that held sources.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if w.excluded(ev.Name) {
		return false
	}
	if !ev.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	ext := filepath.Ext(ev.Name)
	if ext == "" {
		return ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
	}
	return slices.Contains(w.opts.Extensions, ext)
}

// excluded reports whether any directory between the root and path has an
// excluded name.
func (w *Watcher) excluded(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, dir := range parts[:len(parts)-1] {
		if slices.Contains(w.opts.Exclude, dir) {
			return true
		}
	}
	return false
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && slices.Contains(w.opts.Exclude, d.Name()) {
			return filepath.SkipDir
		}
		w.opts.Logger.Debug("watching", "dir", path)
		return w.fs.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
