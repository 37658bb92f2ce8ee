// Package site renders a content catalog into a static website.
//
// A [Builder] produces a [Result]: one [Page] per route plus the shared
// stylesheet. Routes are
//
//	/                   home page, one card per section
//	/examples/{slug}    one page per section, one card per example
//	/404                not-found page
//
// Pages are rendered concurrently, bounded by [WithWorkers]. Every build
// gets a fresh UUID so manifests and reloads can tell builds apart.
//
//	b := site.NewBuilder(cfg.Site, cat, site.WithHighlighter(h))
//	res, err := b.Build(ctx)
//	if err != nil {
//	    return err
//	}
//	return res.WriteDir("public")
//
// `cheatsheet build --watch` writes each rebuild over the previous one and
// deletes pages of removed sections with [RemoveStale].
package site
