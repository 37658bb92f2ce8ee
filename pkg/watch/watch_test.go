package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"

	"github.com/matzehuels/cheatsheet/pkg/observability"
	"github.com/matzehuels/cheatsheet/pkg/site"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/c/react.toml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/c/go.yaml", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/c/old.yml", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/c/react.toml", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "/c/react.toml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/c/.react.toml.swp", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/c/README.md", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.ev); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestReloadKeepsBuildOnError(t *testing.T) {
	first := &site.Result{ID: "first"}
	w := New(t.TempDir(), first, func(context.Context) (*site.Result, error) {
		return nil, errors.New("bad content")
	}, WithLogger(quietLogger()))

	w.reload(context.Background())
	if w.Current() != first {
		t.Error("failed rebuild should keep the previous build")
	}

	w.rebuild = func(context.Context) (*site.Result, error) {
		return &site.Result{ID: "second"}, nil
	}
	w.reload(context.Background())
	if got := w.Current().ID; got != "second" {
		t.Errorf("Current().ID = %q after reload, want second", got)
	}
}

func TestReloadKeepsBuildWhenPublishFails(t *testing.T) {
	first := &site.Result{ID: "first"}
	var published []string
	fail := true
	publish := func(prev, next *site.Result) error {
		if fail {
			return errors.New("disk full")
		}
		if prev != first {
			t.Errorf("publish prev = %v, want the initial build", prev)
		}
		published = append(published, next.ID)
		return nil
	}
	w := New(t.TempDir(), first, func(context.Context) (*site.Result, error) {
		return &site.Result{ID: "next"}, nil
	}, WithPublisher(publish), WithLogger(quietLogger()))

	w.reload(context.Background())
	if w.Current() != first {
		t.Error("unpublished build should not become current")
	}

	fail = false
	w.reload(context.Background())
	if w.Current().ID != "next" || len(published) != 1 || published[0] != "next" {
		t.Errorf("Current() = %q, published = %v", w.Current().ID, published)
	}
}

type reloadRecorder struct {
	observability.NoopWatchHooks
	errs []error
}

func (r *reloadRecorder) OnReload(_ context.Context, _ time.Duration, err error) {
	r.errs = append(r.errs, err)
}

func TestReloadHooks(t *testing.T) {
	rec := &reloadRecorder{}
	observability.SetWatchHooks(rec)
	defer observability.Reset()

	calls := 0
	w := New(t.TempDir(), nil, func(context.Context) (*site.Result, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("bad content")
		}
		return &site.Result{ID: "ok"}, nil
	}, WithLogger(quietLogger()))

	w.reload(context.Background())
	w.reload(context.Background())
	if len(rec.errs) != 2 || rec.errs[0] == nil || rec.errs[1] != nil {
		t.Errorf("reload errors = %v, want [error, nil]", rec.errs)
	}
}

func TestWatcherDebouncesRebuilds(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "react.toml")
	if err := os.WriteFile(file, []byte(`slug = "react"`), 0o644); err != nil {
		t.Fatal(err)
	}

	var rebuilds atomic.Int32
	rebuild := func(context.Context) (*site.Result, error) {
		n := rebuilds.Add(1)
		return &site.Result{ID: fmt.Sprintf("build-%d", n)}, nil
	}
	w := New(dir, &site.Result{ID: "initial"}, rebuild,
		WithDelay(100*time.Millisecond), WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf("slug = \"react\"\norder = %d\n", i)
		if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	deadline := time.Now().Add(3 * time.Second)
	for rebuilds.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(300 * time.Millisecond)

	if got := rebuilds.Load(); got != 1 {
		t.Errorf("rebuilds = %d, want 1 for a burst of writes", got)
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error: %v", err)
	}
	if got := w.Current().ID; got != "build-1" {
		t.Errorf("Current().ID = %q, want build-1", got)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), nil, nil, WithLogger(quietLogger()))
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() on a missing directory should fail")
	}
}
