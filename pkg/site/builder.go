package site

import (
	"context"
	"fmt"
	"html/template"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cheatsheet/pkg/buildinfo"
	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/config"
	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/observability"
	"github.com/matzehuels/cheatsheet/pkg/render"
)

// Builder renders a catalog into a Result.
type Builder struct {
	cfg     config.Site
	cat     *content.Catalog
	hl      *render.Highlighter
	logger  *log.Logger
	workers int

	pages    cache.Cache
	keyer    cache.Keyer
	pagesTTL time.Duration

	now func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithHighlighter sets the syntax highlighter. The default uses the
// "github" style without caching.
func WithHighlighter(h *render.Highlighter) Option {
	return func(b *Builder) {
		if h != nil {
			b.hl = h
		}
	}
}

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithWorkers bounds the number of pages rendered concurrently.
// Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// WithPageCache caches rendered pages keyed by route and content hash, so
// a rebuild after an unrelated edit only re-renders the changed sections.
func WithPageCache(c cache.Cache, ttl time.Duration) Option {
	return func(b *Builder) {
		b.pages = c
		b.pagesTTL = ttl
	}
}

// NewBuilder returns a builder for cat. The catalog is cloned, so later
// changes to cat do not affect builds.
func NewBuilder(cfg config.Site, cat *content.Catalog, opts ...Option) *Builder {
	b := &Builder{
		cfg:    cfg,
		cat:    cat.Clone(),
		logger: log.Default(),
		keyer:  cache.NewDefaultKeyer(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.hl == nil {
		b.hl = render.NewHighlighter("github", nil)
	}
	if b.pages == nil {
		b.pages = cache.NewNullCache()
	}
	if b.workers < 1 {
		b.workers = runtime.GOMAXPROCS(0)
	}
	return b
}

// job renders the body of one page.
type job struct {
	route, title, description string
	width                     string
	hash                      string
	body                      func(ctx context.Context) (template.HTML, error)
}

// Build renders every page. It stops at the first page error or when ctx
// is cancelled.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	jobs := b.plan()
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, len(jobs))

	res := &Result{
		ID:          uuid.NewString(),
		Pages:       make(map[string]*Page, len(jobs)),
		ContentHash: b.cat.Hash(),
	}

	css, err := b.hl.CSS()
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, time.Since(start), err)
		return nil, fmt.Errorf("highlight stylesheet: %w", err)
	}
	res.CSS = siteCSS + "\n/* syntax: " + b.hl.Style() + " */\n" + css

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			p, err := b.renderPage(gctx, j)
			size := 0
			if p != nil {
				size = len(p.HTML)
			}
			hooks.OnPageRendered(gctx, j.route, size, time.Since(t0), err)
			if err != nil {
				return fmt.Errorf("render %s: %w", j.route, err)
			}
			b.logger.Debug("Rendered page", "route", j.route, "bytes", size)

			mu.Lock()
			res.Pages[j.route] = p
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	hooks.OnBuildComplete(ctx, len(res.Pages), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	res.BuiltAt = b.now().UTC()
	b.logger.Debug("Site built", "id", res.ID, "pages", len(res.Pages), "took", time.Since(start).Round(time.Millisecond))
	return res, nil
}

func (b *Builder) renderPage(ctx context.Context, j job) (*Page, error) {
	key := b.keyer.PageKey(j.route, j.hash)
	p := &Page{Route: j.route, Title: j.title, Description: j.description}

	if data, ok, err := b.pages.Get(ctx, key); err == nil && ok {
		p.HTML = data
		return p, nil
	}

	body, err := j.body(ctx)
	if err != nil {
		return nil, err
	}
	html, err := b.layout(j, body)
	if err != nil {
		return nil, err
	}
	p.HTML = html

	if err := b.pages.Set(ctx, key, html, b.pagesTTL); err != nil {
		b.logger.Warn("Page cache write failed", "route", j.route, "error", err)
	}
	return p, nil
}

// plan lists the pages of a build. Each job's hash covers every input that
// affects its output.
func (b *Builder) plan() []job {
	siteHash := cache.Hash([]byte(strings.Join([]string{
		buildinfo.Version, b.cfg.Title, b.cfg.Description, b.cfg.BaseURL, b.hl.Style(),
	}, "\x00")))
	catHash := b.cat.Hash()

	jobs := []job{{
		route:       RouteHome,
		title:       b.cfg.Title,
		description: b.cfg.Description,
		width:       "max-w-4xl",
		hash:        siteHash + catHash,
		body:        b.homeBody,
	}, {
		route:       RouteNotFound,
		title:       "Page Not Found | " + b.shortTitle(),
		description: b.cfg.Description,
		width:       "max-w-4xl",
		hash:        siteHash,
		body:        b.notFoundBody,
	}}

	for i := range b.cat.Sections {
		s := &b.cat.Sections[i]
		jobs = append(jobs, job{
			route:       SectionRoute(s.Slug),
			title:       s.Title + " | " + b.shortTitle(),
			description: plainText(s.Summary),
			width:       "max-w-6xl",
			hash:        siteHash + sectionHash(s),
			body: func(ctx context.Context) (template.HTML, error) {
				return b.sectionBody(ctx, s)
			},
		})
	}
	return jobs
}

// shortTitle is the site title up to the first " - ", so
// "Cheat Sheet - Code Examples" becomes "Cheat Sheet".
func (b *Builder) shortTitle() string {
	short, _, _ := strings.Cut(b.cfg.Title, " - ")
	return strings.TrimSpace(short)
}

func sectionHash(s *content.Section) string {
	c := content.Catalog{Sections: []content.Section{*s}}
	return c.Hash()
}

func plainText(md string) string {
	r := strings.NewReplacer("**", "", "`", "", "_", "")
	return strings.TrimSpace(r.Replace(md))
}
