package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several sites, or several builds with different
// highlight styles, share one Redis instance.
//
// Example usage:
//
//	docs := NewScopedKeyer(NewDefaultKeyer(), "site:docs:")
//	key := docs.HighlightKey("tsx", "github", src)
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HighlightKey generates a prefixed key for highlighted code.
func (k *ScopedKeyer) HighlightKey(lang, style, code string) string {
	return k.prefix + k.inner.HighlightKey(lang, style, code)
}

// PageKey generates a prefixed key for a rendered page.
func (k *ScopedKeyer) PageKey(route, contentHash string) string {
	return k.prefix + k.inner.PageKey(route, contentHash)
}
