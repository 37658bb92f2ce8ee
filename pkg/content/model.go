package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/clone"
	"github.com/matzehuels/cheatsheet/pkg/errors"
)

// Catalog is an ordered list of sections.
type Catalog struct {
	Sections []Section `json:"sections"`
}

// Section is one page of the site.
type Section struct {
	Slug    string `toml:"slug" yaml:"slug" json:"slug"`
	Title   string `toml:"title" yaml:"title" json:"title"`
	Heading string `toml:"heading" yaml:"heading" json:"heading,omitempty"`
	// Summary is markdown shown on the home page card.
	Summary  string    `toml:"summary" yaml:"summary" json:"summary,omitempty"`
	Order    int       `toml:"order" yaml:"order" json:"order"`
	Examples []Example `toml:"examples" yaml:"examples" json:"examples"`
}

// PageHeading returns Heading, falling back to Title.
func (s *Section) PageHeading() string {
	if s.Heading != "" {
		return s.Heading
	}
	return s.Title
}

// Example is a single card on a section page.
type Example struct {
	ID       string `toml:"id" yaml:"id" json:"id"`
	Title    string `toml:"title" yaml:"title" json:"title"`
	Summary  string `toml:"summary" yaml:"summary" json:"summary,omitempty"`
	Code     string `toml:"code" yaml:"code" json:"code,omitempty"`
	Language string `toml:"language" yaml:"language" json:"language,omitempty"`
	Notes    string `toml:"notes" yaml:"notes" json:"notes,omitempty"`
	// Meta holds free-form keys such as demo = "format-name".
	Meta map[string]any `toml:"meta" yaml:"meta" json:"meta,omitempty"`
}

// MetaString returns Meta[key] when it is a string.
func (e *Example) MetaString(key string) string {
	s, _ := e.Meta[key].(string)
	return s
}

// Section returns the section with the given slug.
func (c *Catalog) Section(slug string) (*Section, error) {
	for i := range c.Sections {
		if c.Sections[i].Slug == slug {
			return &c.Sections[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeSectionNotFound, "section not found: %s", slug)
}

// Find returns the example id within section slug.
func (c *Catalog) Find(slug, id string) (*Example, error) {
	s, err := c.Section(slug)
	if err != nil {
		return nil, err
	}
	for i := range s.Examples {
		if s.Examples[i].ID == id {
			return &s.Examples[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeExampleNotFound, "example not found: %s/%s", slug, id)
}

// Len returns the total number of examples.
func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Examples)
	}
	return n
}

// Clone returns a deep copy of c. Mutating the copy, including example
// metadata, never affects c.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{Sections: make([]Section, len(c.Sections))}
	for i, s := range c.Sections {
		s.Examples = append([]Example(nil), s.Examples...)
		for j := range s.Examples {
			s.Examples[j].Meta = clone.Map(s.Examples[j].Meta)
		}
		out.Sections[i] = s
	}
	return out
}

// Hash returns a stable digest of the catalog contents.
func (c *Catalog) Hash() string {
	data, err := json.Marshal(c)
	if err != nil {
		// map[any]any metadata from YAML; fmt sorts map keys.
		data = []byte(fmt.Sprintf("%v", *c))
	}
	return cache.Hash(data)
}

// Markdown renders the example as a standalone markdown document: title,
// summary, fenced code and notes.
func (e *Example) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	if e.Summary != "" {
		b.WriteString(strings.TrimSpace(e.Summary))
		b.WriteString("\n\n")
	}
	if e.Code != "" {
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", e.Language, strings.TrimRight(e.Code, "\n"))
	}
	if e.Notes != "" {
		b.WriteString(strings.TrimSpace(e.Notes))
		b.WriteString("\n")
	}
	return b.String()
}
