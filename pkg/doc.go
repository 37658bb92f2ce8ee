// Package pkg provides the libraries behind the cheatsheet site generator.
//
// # Overview
//
// Cheatsheet turns a catalog of code examples into a static website with one
// page per section, rebuilds it as content changes, and browses it from
// the terminal. The pkg directory is organized into three areas:
//
//  1. Content - [content] loads and validates the catalog; [strutil] and
//     [clone] are the small helpers the catalog and its demos use.
//  2. Rendering - [render] turns markdown and code into HTML fragments,
//     [ui] provides the HTML components, [site] assembles pages and
//     [sitemap] draws the page graph.
//  3. Infrastructure - [cache], [config], [errors], [observability],
//     [debounce] and [watch] support building and rebuilding.
//
// # Architecture
//
// The typical data flow:
//
//	TOML/YAML section files
//	         ↓
//	    [content] package (load, normalize, validate)
//	         ↓
//	    [site] package (render every page in parallel)
//	         ↓
//	    static directory  ([watch] rewrites it on content changes)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cheatsheet/pkg/config"
//	    "github.com/matzehuels/cheatsheet/pkg/content"
//	    "github.com/matzehuels/cheatsheet/pkg/site"
//	)
//
//	cat, _ := content.Builtin()
//	res, _ := site.NewBuilder(config.Default().Site, cat).Build(ctx)
//	_ = res.WriteDir("public")
//
// [content]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/content
// [strutil]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/strutil
// [clone]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/clone
// [render]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/render
// [ui]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/ui
// [site]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/site
// [sitemap]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/sitemap
// [cache]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/observability
// [debounce]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/debounce
// [watch]: https://pkg.go.dev/github.com/matzehuels/cheatsheet/pkg/watch
package pkg
