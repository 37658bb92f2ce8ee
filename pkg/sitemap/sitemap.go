package sitemap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cheatsheet/pkg/site"
)

// Options configures sitemap rendering.
type Options struct {
	// Detailed adds the route and page size to node labels.
	Detailed bool
}

// Edge is a link between two routes.
type Edge struct {
	From, To string
}

// Edges returns the links of res in route order.
func Edges(res *site.Result) []Edge {
	var edges []Edge
	for _, route := range res.Routes() {
		if _, ok := site.SlugFromRoute(route); !ok {
			continue
		}
		edges = append(edges, Edge{site.RouteHome, route}, Edge{route, site.RouteHome})
	}
	if res.Page(site.RouteNotFound) != nil && res.Page(site.RouteHome) != nil {
		edges = append(edges, Edge{site.RouteNotFound, site.RouteHome})
	}
	return edges
}

// ToDOT converts the page graph of res to Graphviz DOT.
func ToDOT(res *site.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph sitemap {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#4b5563\"];\n")
	buf.WriteString("\n")

	for _, route := range res.Routes() {
		p := res.Pages[route]
		attrs := []string{fmt.Sprintf("label=%q", label(p, opts.Detailed))}
		switch route {
		case site.RouteHome:
			attrs = append(attrs, "fillcolor=\"#2563eb\"", "fontcolor=white")
		case site.RouteNotFound:
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", route, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range Edges(res) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func label(p *site.Page, detailed bool) string {
	title := p.Title
	if title == "" {
		title = p.Route
	}
	if !detailed {
		return title
	}
	return fmt.Sprintf("%s\n%s\n%d bytes", title, p.Route, len(p.HTML))
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based width and height with the
// viewBox size so the SVG scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
