// Package sitemap draws the link structure of a build as a Graphviz graph.
//
// The home page links to every section page, every section page links back
// home through its "Back to Home" button, and the not-found page links home:
//
//	dot := sitemap.ToDOT(res, sitemap.Options{})
//	svg, err := sitemap.RenderSVG(ctx, dot)
//
// Rendering uses the WebAssembly build of Graphviz bundled with
// goccy/go-graphviz, so no system Graphviz install is needed.
package sitemap
