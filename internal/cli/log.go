package cli

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cheatsheet/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Built 6 pages (84ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports build, cache and reload events at debug level and counts cache
// traffic for the build summary.
type logHooks struct {
	logger *log.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnBuildStart(_ context.Context, pages int) {
	h.logger.Debug("Build started", "pages", pages)
}

func (h *logHooks) OnPageRendered(_ context.Context, route string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Page failed", "route", route, "error", err)
	}
}

func (h *logHooks) OnBuildComplete(_ context.Context, pages int, d time.Duration, err error) {
	h.logger.Debug("Build finished", "pages", pages, "took", d.Round(time.Millisecond), "error", err)
}

func (h *logHooks) OnCacheHit(context.Context, string)  { h.hits.Add(1) }
func (h *logHooks) OnCacheMiss(context.Context, string) { h.misses.Add(1) }

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cached", "type", keyType, "bytes", size)
}

func (h *logHooks) OnReload(_ context.Context, d time.Duration, err error) {
	h.logger.Debug("Reload finished", "took", d.Round(time.Millisecond), "error", err)
}

// cacheCounts returns hits and misses recorded so far.
func (h *logHooks) cacheCounts() (hits, misses int64) {
	return h.hits.Load(), h.misses.Load()
}

var (
	_ observability.BuildHooks = (*logHooks)(nil)
	_ observability.CacheHooks = (*logHooks)(nil)
	_ observability.WatchHooks = (*logHooks)(nil)
)
