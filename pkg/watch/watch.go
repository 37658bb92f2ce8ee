package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/debounce"
	"github.com/matzehuels/cheatsheet/pkg/observability"
	"github.com/matzehuels/cheatsheet/pkg/site"
)

// DefaultDelay is the quiet period used when WithDelay is not given.
const DefaultDelay = 200 * time.Millisecond

// RebuildFunc produces a fresh build, typically by reloading the catalog
// from disk and running a site.Builder.
type RebuildFunc func(ctx context.Context) (*site.Result, error)

// PublishFunc makes a successful build visible, for example by writing it
// to the output directory. prev is the build it replaces and may be nil.
type PublishFunc func(prev, next *site.Result) error

// Watcher rebuilds and publishes the site when content files change.
type Watcher struct {
	dir     string
	rebuild RebuildFunc
	publish PublishFunc
	current atomic.Pointer[site.Result]
	delay   time.Duration
	sched   debounce.Scheduler
	logger  *log.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets the quiet period after the last change before a rebuild.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) { w.delay = d }
}

// WithScheduler overrides the debounce timer service.
func WithScheduler(s debounce.Scheduler) Option {
	return func(w *Watcher) { w.sched = s }
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithPublisher sets the function each successful rebuild is handed to.
func WithPublisher(p PublishFunc) Option {
	return func(w *Watcher) { w.publish = p }
}

// New returns a watcher for dir. initial is the build already published,
// and may be nil.
func New(dir string, initial *site.Result, rebuild RebuildFunc, opts ...Option) *Watcher {
	w := &Watcher{
		dir:     dir,
		rebuild: rebuild,
		delay:   DefaultDelay,
		sched:   debounce.SystemScheduler{},
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.current.Store(initial)
	return w
}

// Current returns the most recently published build.
func (w *Watcher) Current() *site.Result {
	return w.current.Load()
}

// Run watches until ctx is cancelled. Rebuilds run on the Run goroutine,
// so at most one is in progress and none outlive Run.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	trigger := make(chan struct{}, 1)
	d := debounce.New(func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}, w.delay, debounce.WithScheduler(w.sched))
	defer d.Cancel()

	w.logger.Info("Watching content", "dir", w.dir, "debounce", w.delay)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if relevant(ev) {
				w.logger.Debug("Content changed", "file", filepath.Base(ev.Name), "op", ev.Op.String())
				d.Call()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watch error", "error", err)
		case <-trigger:
			w.reload(ctx)
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !content.IsSectionFile(ev.Name) {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	start := time.Now()
	err := w.rebuildAndPublish(ctx)
	observability.Watch().OnReload(ctx, time.Since(start), err)
	if err != nil {
		w.logger.Error("Rebuild failed, keeping previous build", "error", err)
	}
}

func (w *Watcher) rebuildAndPublish(ctx context.Context) error {
	start := time.Now()
	res, err := w.rebuild(ctx)
	if err != nil {
		return err
	}
	if w.publish != nil {
		if err := w.publish(w.Current(), res); err != nil {
			return fmt.Errorf("publish build %s: %w", res.ID, err)
		}
	}
	prev := ""
	if old := w.current.Swap(res); old != nil {
		prev = old.ID
	}
	w.logger.Info("Rebuilt", "build", res.ID, "previous", prev, "pages", len(res.Pages),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}
