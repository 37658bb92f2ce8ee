package content

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cheatsheet/pkg/errors"
	"github.com/matzehuels/cheatsheet/pkg/strutil"
)

// Load reads every *.toml, *.yaml and *.yml file at the root of fsys as one
// section, normalizes and validates the result. Sections are ordered by
// Order, then Slug; examples keep file order.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "read content directory")
	}

	cat := &Catalog{}
	for _, e := range entries {
		if e.IsDir() || !IsSectionFile(e.Name()) {
			continue
		}
		s, err := loadSection(fsys, e.Name())
		if err != nil {
			return nil, err
		}
		cat.Sections = append(cat.Sections, s)
	}
	if len(cat.Sections) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidContent, "no section files found")
	}

	cat.normalize()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// LoadDir is Load over os.DirFS(dir).
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// IsSectionFile reports whether name has a section file extension.
func IsSectionFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

func loadSection(fsys fs.FS, name string) (Section, error) {
	var s Section
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidContent, err, "read %s", name)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse %s", name)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return s, errors.New(errors.ErrCodeInvalidContent, "%s: unknown key %s", name, undecoded[0])
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse %s", name)
		}
	}

	if s.Slug == "" && s.Title == "" {
		s.Slug = strutil.ToKebabCase(strings.TrimSuffix(name, path.Ext(name)))
	}
	return s, nil
}

func (c *Catalog) normalize() {
	for i := range c.Sections {
		s := &c.Sections[i]
		s.Slug = strings.TrimSpace(s.Slug)
		s.Title = strings.TrimSpace(s.Title)
		if s.Slug == "" {
			s.Slug = strutil.ToKebabCase(s.Title)
		}
		if s.Title == "" {
			s.Title = strutil.FormatName(strings.ReplaceAll(s.Slug, "-", " "))
		}
		for j := range s.Examples {
			e := &s.Examples[j]
			e.Title = strings.TrimSpace(e.Title)
			if e.ID == "" {
				e.ID = strutil.ToKebabCase(e.Title)
			}
			if e.Language == "" && e.Code != "" {
				e.Language = "text"
			}
		}
	}
	slices.SortStableFunc(c.Sections, func(a, b Section) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Slug, b.Slug)
	})
}

// Validate checks that slugs and example IDs are kebab-case and unique and
// that every example has a title.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if err := errors.ValidateSlug(s.Slug); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidContent, err, "section %q", s.Title)
		}
		if seen[s.Slug] {
			return errors.New(errors.ErrCodeInvalidContent, "duplicate section slug: %s", s.Slug)
		}
		seen[s.Slug] = true

		ids := make(map[string]bool, len(s.Examples))
		for i, e := range s.Examples {
			if e.Title == "" {
				return errors.New(errors.ErrCodeInvalidContent, "%s: example %d has no title", s.Slug, i+1)
			}
			if err := errors.ValidateSlug(e.ID); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidContent, err, "%s: example %q needs an explicit id", s.Slug, e.Title)
			}
			if ids[e.ID] {
				return errors.New(errors.ErrCodeInvalidContent, "%s: duplicate example id: %s", s.Slug, e.ID)
			}
			ids[e.ID] = true
		}
	}
	return nil
}
