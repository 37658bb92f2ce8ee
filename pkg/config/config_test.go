package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/cheatsheet/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
[site]
title = "Team Sheet"

[content]
dir = "content"

[watch]
enabled = true
debounce = "300ms"

[cache]
backend = "none"
`)

	cfg, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Site.Title != "Team Sheet" {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, "Team Sheet")
	}
	if cfg.Site.Description != Default().Site.Description {
		t.Errorf("Site.Description = %q, want default", cfg.Site.Description)
	}
	if cfg.Content.Dir != "content" {
		t.Errorf("Content.Dir = %q, want content", cfg.Content.Dir)
	}
	if !cfg.Watch.Enabled {
		t.Errorf("Watch.Enabled = false, want true")
	}
	if cfg.Watch.Debounce.Duration != 300*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 300ms", cfg.Watch.Debounce)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Build.Workers != 4 {
		t.Errorf("Build.Workers = %d, want default 4", cfg.Build.Workers)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `[site`},
		{"unknown key", "[site]\ntitel = \"x\""},
		{"bad duration", "[watch]\ndebounce = \"soon\""},
		{"empty title", "[site]\ntitle = \" \""},
		{"zero workers", "[build]\nworkers = 0"},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"redis without url", "[cache]\nbackend = \"redis\""},
		{"bad base url", "[site]\nbase_url = \"ftp://x\""},
		{"negative debounce", "[watch]\ndebounce = \"-1s\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), Default())
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cheatsheet.toml")
	if err := os.WriteFile(path, []byte("[build]\nout_dir = \"dist\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Build.OutDir != "dist" {
		t.Errorf("Build.OutDir = %q, want dist", cfg.Build.OutDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}
