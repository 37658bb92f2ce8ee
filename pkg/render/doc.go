// Package render turns catalog text into HTML fragments.
//
// # Markdown
//
// [Markdown] converts example summaries and notes with goldmark and the
// GitHub Flavored Markdown extension. Raw HTML in the source is dropped, so
// content files cannot inject markup into generated pages.
//
// # Syntax Highlighting
//
// [Highlighter] wraps chroma. It emits class-based HTML and a matching
// stylesheet from [Highlighter.CSS], which keeps page markup independent of
// the chosen style:
//
//	h := render.NewHighlighter("github", cache.NewNullCache())
//	code, err := h.Highlight(ctx, src, "tsx")
//	css, err := h.CSS()
//
// Highlighted fragments are cached under [cache.Keyer.HighlightKey], so an
// unchanged example is lexed once across builds and rebuilds.
package render
