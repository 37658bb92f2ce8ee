package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/cheatsheet/pkg/errors"
)

// WriteDir writes the build under dir: one index.html per route,
// 404.html, assets/style.css and manifest.json. Existing files are
// overwritten; stale files from earlier builds are left in place.
func (r *Result) WriteDir(dir string) error {
	for _, route := range r.Routes() {
		p := r.Pages[route]
		if err := writeFile(dir, p.File(), p.HTML); err != nil {
			return err
		}
	}
	if err := writeFile(dir, "assets/style.css", []byte(r.CSS)); err != nil {
		return err
	}

	manifest, err := json.MarshalIndent(r.Manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return writeFile(dir, "manifest.json", append(manifest, '\n'))
}

// RemoveStale deletes the page files of prev that next no longer has, so a
// directory written by prev.WriteDir and then next.WriteDir matches next.
func RemoveStale(dir string, prev, next *Result) error {
	if prev == nil {
		return nil
	}
	for _, route := range prev.Routes() {
		if next.Page(route) != nil {
			continue
		}
		rel := prev.Pages[route].File()
		if err := errors.ValidatePath(rel); err != nil {
			return err
		}
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", rel, err)
		}
		// Drop the now empty examples/<slug> directory.
		_ = os.Remove(filepath.Dir(p))
	}
	return nil
}

func writeFile(dir, rel string, data []byte) error {
	if err := errors.ValidatePath(rel); err != nil {
		return err
	}
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
