package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBuildHooks{}
	b.OnBuildStart(ctx, 6)
	b.OnPageRendered(ctx, "/examples/react", 2048, time.Millisecond, nil)
	b.OnBuildComplete(ctx, 6, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "highlight")
	c.OnCacheMiss(ctx, "highlight")
	c.OnCacheSet(ctx, "highlight", 1024)

	w := NoopWatchHooks{}
	w.OnReload(ctx, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Watch().(NoopWatchHooks); !ok {
		t.Error("Watch() should return NoopWatchHooks by default")
	}

	customBuild := &testBuildHooks{}
	SetBuildHooks(customBuild)
	if Build() != customBuild {
		t.Error("SetBuildHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customWatch := &testWatchHooks{}
	SetWatchHooks(customWatch)
	if Watch() != customWatch {
		t.Error("SetWatchHooks should set custom hooks")
	}

	Reset()
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
	if _, ok := Watch().(NoopWatchHooks); !ok {
		t.Error("Reset() should restore NoopWatchHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testBuildHooks{}
	SetBuildHooks(custom)

	// Setting nil should be ignored
	SetBuildHooks(nil)

	if Build() != custom {
		t.Error("SetBuildHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testBuildHooks struct{ NoopBuildHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testWatchHooks struct{ NoopWatchHooks }
