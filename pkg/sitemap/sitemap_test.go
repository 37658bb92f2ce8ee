package sitemap

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/cheatsheet/pkg/site"
)

func testResult() *site.Result {
	pages := map[string]*site.Page{}
	for _, p := range []*site.Page{
		{Route: site.RouteHome, Title: "Cheat Sheet", HTML: []byte("home")},
		{Route: site.RouteNotFound, Title: "Page Not Found"},
		{Route: site.SectionRoute("react"), Title: "React Patterns"},
		{Route: site.SectionRoute("node"), Title: "Node.js Patterns"},
	} {
		pages[p.Route] = p
	}
	return &site.Result{ID: "test", Pages: pages}
}

func TestEdges(t *testing.T) {
	edges := Edges(testResult())
	want := []Edge{
		{"/", "/examples/node"}, {"/examples/node", "/"},
		{"/", "/examples/react"}, {"/examples/react", "/"},
		{"/404", "/"},
	}
	if len(edges) != len(want) {
		t.Fatalf("Edges() = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("Edges()[%d] = %v, want %v", i, edges[i], want[i])
		}
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testResult(), Options{})
	for _, want := range []string{
		"digraph sitemap {",
		`"/" [label="Cheat Sheet"`,
		`"/examples/react" [label="React Patterns"]`,
		`"/" -> "/examples/react";`,
		`"/404" -> "/";`,
		"dashed",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testResult(), Options{Detailed: true})
	if !strings.Contains(dot, `Cheat Sheet\n/\n4 bytes`) {
		t.Errorf("detailed label missing route and size:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testResult(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "React Patterns") {
		t.Errorf("RenderSVG() output missing svg or labels")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox = %s", got)
	}
}
