package render

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/observability"
)

const cacheKeyType = "highlight"

// Highlighter renders source code to class-annotated HTML.
// It is safe for concurrent use.
type Highlighter struct {
	styleName string
	style     *chroma.Style
	formatter *html.Formatter
	cache     cache.Cache
	keyer     cache.Keyer
	ttl       time.Duration
}

// HighlighterOption configures a Highlighter.
type HighlighterOption func(*Highlighter)

// WithKeyer overrides the cache key scheme.
func WithKeyer(k cache.Keyer) HighlighterOption {
	return func(h *Highlighter) { h.keyer = k }
}

// WithTTL sets the lifetime of cached fragments. Zero keeps them forever.
func WithTTL(ttl time.Duration) HighlighterOption {
	return func(h *Highlighter) { h.ttl = ttl }
}

// NewHighlighter returns a Highlighter for the named chroma style. Unknown
// styles fall back to chroma's default. A nil cache disables caching.
func NewHighlighter(style string, c cache.Cache, opts ...HighlighterOption) *Highlighter {
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	h := &Highlighter{
		styleName: s.Name,
		style:     s,
		formatter: html.New(html.WithClasses(true), html.TabWidth(2)),
		cache:     c,
		keyer:     cache.NewDefaultKeyer(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Style returns the resolved style name.
func (h *Highlighter) Style() string { return h.styleName }

// Highlight renders code in lang. Unknown languages render as plain text.
// Cache failures degrade to re-rendering; only lexing or formatting errors
// are returned.
func (h *Highlighter) Highlight(ctx context.Context, code, lang string) (template.HTML, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	key := h.keyer.HighlightKey(lang, h.styleName, code)

	if data, ok, err := h.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return template.HTML(data), nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", err
	}

	out := b.String()
	if err := h.cache.Set(ctx, key, []byte(out), h.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(out))
	}
	return template.HTML(out), nil
}

// CSS returns the stylesheet for the highlighter's style.
func (h *Highlighter) CSS() (string, error) {
	var b strings.Builder
	if err := h.formatter.WriteCSS(&b, h.style); err != nil {
		return "", err
	}
	return b.String(), nil
}
