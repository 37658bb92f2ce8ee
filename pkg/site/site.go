package site

import (
	"path"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/cheatsheet/pkg/buildinfo"
)

// Well-known routes.
const (
	RouteHome     = "/"
	RouteNotFound = "/404"
	RouteCSS      = "/assets/style.css"
)

// SectionRoute returns the route of the section page for slug.
func SectionRoute(slug string) string {
	return "/examples/" + slug
}

// SlugFromRoute returns the section slug of a section route.
func SlugFromRoute(route string) (string, bool) {
	return strings.CutPrefix(route, "/examples/")
}

// Page is one rendered HTML document.
type Page struct {
	Route       string
	Title       string
	Description string
	HTML        []byte
}

// File returns the output path of the page relative to the site root.
func (p *Page) File() string {
	switch p.Route {
	case RouteHome:
		return "index.html"
	case RouteNotFound:
		return "404.html"
	}
	return path.Join(strings.TrimPrefix(p.Route, "/"), "index.html")
}

// Result is a complete build.
type Result struct {
	ID          string
	Pages       map[string]*Page
	CSS         string
	ContentHash string
	BuiltAt     time.Time
}

// Page returns the page for route, or nil.
func (r *Result) Page(route string) *Page {
	return r.Pages[route]
}

// Routes returns all routes in sorted order.
func (r *Result) Routes() []string {
	routes := make([]string, 0, len(r.Pages))
	for route := range r.Pages {
		routes = append(routes, route)
	}
	slices.Sort(routes)
	return routes
}

// Manifest describes a build. It is written to manifest.json.
type Manifest struct {
	ID          string         `json:"id"`
	BuiltAt     time.Time      `json:"built_at"`
	ContentHash string         `json:"content_hash"`
	Generator   buildinfo.Info `json:"generator"`
	Pages       []ManifestPage `json:"pages"`
}

// ManifestPage is one entry of Manifest.Pages.
type ManifestPage struct {
	Route string `json:"route"`
	Title string `json:"title"`
	File  string `json:"file"`
	Bytes int    `json:"bytes"`
}

// Manifest returns the manifest for r, pages sorted by route.
func (r *Result) Manifest() Manifest {
	m := Manifest{
		ID:          r.ID,
		BuiltAt:     r.BuiltAt,
		ContentHash: r.ContentHash,
		Generator:   buildinfo.Get(),
		Pages:       make([]ManifestPage, 0, len(r.Pages)),
	}
	for _, route := range r.Routes() {
		p := r.Pages[route]
		m.Pages = append(m.Pages, ManifestPage{
			Route: route,
			Title: p.Title,
			File:  p.File(),
			Bytes: len(p.HTML),
		})
	}
	return m
}
