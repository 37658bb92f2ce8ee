package site

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"strings"

	"github.com/matzehuels/cheatsheet/pkg/buildinfo"
	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/errors"
	"github.com/matzehuels/cheatsheet/pkg/render"
	"github.com/matzehuels/cheatsheet/pkg/strutil"
	"github.com/matzehuels/cheatsheet/pkg/ui"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed templates/style.css
	siteCSS string

	templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
)

// Packages is the "Workspace Packages" listing on the home page.
var Packages = []struct{ Name, Description string }{
	{"pkg/ui", "Shared Button and Card components"},
	{"pkg/strutil", "String utilities: FormatName, ToKebabCase"},
	{"pkg/clone", "Deep copies of decoded TOML, YAML and JSON data"},
	{"pkg/debounce", "Debounced callbacks over a pluggable scheduler"},
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (b *Builder) layout(j job, body template.HTML) ([]byte, error) {
	canonical := ""
	if b.cfg.BaseURL != "" {
		canonical = strings.TrimSuffix(b.cfg.BaseURL, "/") + j.route
	}
	out, err := execute("layout.html", map[string]any{
		"Title":       j.title,
		"Description": j.description,
		"Canonical":   canonical,
		"Version":     buildinfo.Version,
		"Width":       j.width,
		"Body":        body,
	})
	return []byte(out), err
}

func (b *Builder) homeBody(context.Context) (template.HTML, error) {
	cards := make([]template.HTML, 0, len(b.cat.Sections))
	for _, s := range b.cat.Sections {
		summary, err := render.Markdown(s.Summary)
		if err != nil {
			return "", err
		}
		cards = append(cards, ui.Card{
			Title: s.Title,
			Body:  template.HTML(`<div class="text-gray-600">`) + summary + `</div>`,
			Footer: ui.Button{
				Label:   "View Examples",
				Variant: ui.Primary,
				Href:    SectionRoute(s.Slug),
			}.Render(),
		}.Render())
	}

	packages, err := execute("packages.html", Packages)
	if err != nil {
		return "", err
	}
	return execute("home.html", map[string]any{
		"Heading":  "Code Examples & Patterns",
		"Cards":    cards,
		"Packages": ui.Card{Title: "Workspace Packages", Body: packages}.Render(),
	})
}

func (b *Builder) sectionBody(ctx context.Context, s *content.Section) (template.HTML, error) {
	summary, err := render.Markdown(s.Summary)
	if err != nil {
		return "", err
	}
	cards := make([]template.HTML, 0, len(s.Examples))
	for i := range s.Examples {
		card, err := b.exampleCard(ctx, &s.Examples[i])
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidContent, err, "%s/%s", s.Slug, s.Examples[i].ID)
		}
		cards = append(cards, card)
	}
	return execute("section.html", map[string]any{
		"Back":    ui.Button{Label: "← Back to Home", Variant: ui.Outline, Href: RouteHome}.Render(),
		"Heading": s.PageHeading(),
		"Summary": summary,
		"Cards":   cards,
	})
}

func (b *Builder) exampleCard(ctx context.Context, e *content.Example) (template.HTML, error) {
	summary, err := render.Markdown(e.Summary)
	if err != nil {
		return "", err
	}
	notes, err := render.Markdown(e.Notes)
	if err != nil {
		return "", err
	}
	var code template.HTML
	if e.Code != "" {
		if code, err = b.hl.Highlight(ctx, e.Code, e.Language); err != nil {
			return "", err
		}
	}
	demo, err := renderDemo(e)
	if err != nil {
		return "", err
	}

	body, err := execute("example.html", map[string]any{
		"Summary":  summary,
		"Demo":     demo,
		"Code":     code,
		"Language": e.Language,
	})
	if err != nil {
		return "", err
	}
	return ui.Card{Title: e.Title, Body: body, Footer: notes}.Render(), nil
}

// demos are utility functions an example can showcase with
// meta.demo = "<name>"; meta.input overrides the sample input.
var demos = map[string]struct {
	fn     func(string) string
	name   string
	sample string
}{
	"format-name": {strutil.FormatName, "strutil.FormatName", "john doe"},
	"kebab-case":  {strutil.ToKebabCase, "strutil.ToKebabCase", "HelloWorld"},
}

func renderDemo(e *content.Example) (template.HTML, error) {
	name := e.MetaString("demo")
	if name == "" {
		return "", nil
	}
	d, ok := demos[name]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidContent, "unknown demo %q", name)
	}
	input := e.MetaString("input")
	if input == "" {
		input = d.sample
	}
	return execute("demo.html", map[string]string{
		"Input":  input,
		"Output": d.fn(input),
		"Func":   d.name,
	})
}

func (b *Builder) notFoundBody(context.Context) (template.HTML, error) {
	return ui.Card{
		Title: "Page Not Found",
		Body:  `<p class="text-gray-600">The page you requested does not exist.</p>`,
		Footer: ui.Button{
			Label:   "Back to Home",
			Variant: ui.Primary,
			Href:    RouteHome,
		}.Render(),
	}.Render(), nil
}
