package ui

import (
	"bytes"
	"html/template"
	"strings"
)

var (
	buttonTmpl = template.Must(template.New("button").Parse(
		`{{if .Href}}<a href="{{.Href}}">{{end}}<button type="button" class="{{.Class}}">{{.Label}}</button>{{if .Href}}</a>{{end}}`))

	cardTmpl = template.Must(template.New("card").Parse(
		`<div class="{{.Class}}">` +
			`{{if .Title}}<div class="px-6 py-4 border-b"><h3 class="text-lg font-semibold">{{.Title}}</h3></div>{{end}}` +
			`<div class="px-6 py-4">{{.Body}}</div>` +
			`{{if .Footer}}<div class="px-6 py-4 border-t bg-gray-50">{{.Footer}}</div>{{end}}` +
			`</div>`))
)

// Button is a styled button, optionally wrapped in a link.
type Button struct {
	Label   string
	Variant Variant
	Class   string // extra classes appended after the variant classes
	Href    string // when set, the button is wrapped in <a href>
}

// Render returns the button markup.
func (b Button) Render() template.HTML {
	class := ResolveStyle(b.Variant).Class()
	if extra := strings.TrimSpace(b.Class); extra != "" {
		class += " " + extra
	}
	return execute(buttonTmpl, struct {
		Label, Class, Href string
	}{b.Label, class, b.Href})
}

// Card is a bordered container with an optional header and footer.
type Card struct {
	Title  string        // header text; no header region when empty
	Body   template.HTML // always rendered
	Footer template.HTML // no footer region when empty
	Class  string        // extra classes for the outer container
}

const baseCardClass = "border rounded-lg shadow-sm"

// HasHeader reports whether the card renders a header region.
func (c Card) HasHeader() bool { return c.Title != "" }

// HasFooter reports whether the card renders a footer region.
func (c Card) HasFooter() bool { return c.Footer != "" }

// Render returns the card markup.
func (c Card) Render() template.HTML {
	class := baseCardClass
	if extra := strings.TrimSpace(c.Class); extra != "" {
		class += " " + extra
	}
	return execute(cardTmpl, struct {
		Title  string
		Body   template.HTML
		Footer template.HTML
		Class  string
	}{c.Title, c.Body, c.Footer, class})
}

// execute runs a package template. The templates are fixed and their data
// is plain strings, so execution cannot fail at runtime.
func execute(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic("ui: " + t.Name() + ": " + err.Error())
	}
	return template.HTML(buf.String())
}
