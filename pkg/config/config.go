// Package config loads cheatsheet.toml.
//
// A config file is optional: [Default] returns a working configuration that
// builds the embedded catalog into ./public. A file
// only needs the keys it changes:
//
//	[site]
//	title = "Team Cheat Sheet"
//
//	[content]
//	dir = "content"
//
//	[watch]
//	enabled = true
//	debounce = "300ms"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cheatsheet/pkg/errors"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the root of cheatsheet.toml.
type Config struct {
	Site    Site    `toml:"site"`
	Content Content `toml:"content"`
	Build   Build   `toml:"build"`
	Watch   Watch   `toml:"watch"`
	Cache   Cache   `toml:"cache"`
}

// Site holds page-level metadata.
type Site struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	BaseURL     string `toml:"base_url"`
}

// Content locates the catalog. An empty Dir selects the embedded catalog.
type Content struct {
	Dir string `toml:"dir"`
}

// Build controls static output.
type Build struct {
	OutDir         string `toml:"out_dir"`
	Workers        int    `toml:"workers"`
	HighlightStyle string `toml:"highlight_style"`
}

// Watch controls rebuilding on content changes.
type Watch struct {
	Enabled  bool     `toml:"enabled"`
	Debounce Duration `toml:"debounce"`
}

// Cache selects and configures the render cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Site: Site{
			Title:       "Cheat Sheet - Code Examples",
			Description: "A collection of code examples and patterns",
		},
		Build: Build{
			OutDir:         "public",
			Workers:        4,
			HighlightStyle: "github",
		},
		Watch: Watch{
			Debounce: Duration{200 * time.Millisecond},
		},
		Cache: Cache{
			Backend: CacheFile,
			TTL:     Duration{7 * 24 * time.Hour},
		},
	}
}

// Load reads the TOML file at path over Default and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field requirements.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "site.title cannot be empty")
	}
	if c.Site.BaseURL != "" {
		if err := errors.ValidateURL(c.Site.BaseURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "site.base_url")
		}
	}
	if c.Build.OutDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "build.out_dir cannot be empty")
	}
	if c.Build.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "build.workers must be at least 1, got %d", c.Build.Workers)
	}
	if c.Watch.Debounce.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "watch.debounce cannot be negative")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid cache.backend: %s (must be 'file', 'redis', or 'none')", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	return nil
}
