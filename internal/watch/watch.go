// Package watch reloads the building layout when its file changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/scene"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Reload is the result of re-reading the layout file.
type Reload struct {
	Path   string
	Layout *scene.Layout
	Err    error
}

// Watcher watches one layout file. Results arrive on Reloads, which is
// closed once the watcher stops.
type Watcher struct {
	Reloads chan Reload

	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *zap.Logger

	done chan struct{}
	once sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New starts watching path. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		Reloads:  make(chan Reload, 1),
		fs:       fw,
		path:     abs,
		debounce: DefaultDebounce,
		log:      logger.Named("watch"),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.log.Info("watching layout", zap.String("path", abs))
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)

	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-pending:
			pending = nil
			if !w.deliver(w.reload()) {
				return
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path && isLayoutFile(event.Name)
}

func (w *Watcher) reload() Reload {
	layout, err := scene.LoadLayout(w.path)
	if err != nil {
		w.log.Warn("layout reload failed", zap.String("path", w.path), zap.Error(err))
		return Reload{Path: w.path, Err: err}
	}
	w.log.Info("layout reloaded",
		zap.String("path", w.path),
		zap.Int("presets", len(layout.Presets)),
	)
	return Reload{Path: w.path, Layout: layout}
}

func (w *Watcher) deliver(r Reload) bool {
	select {
	case w.Reloads <- r:
		return true
	case <-w.done:
		return false
	}
}

func isLayoutFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
