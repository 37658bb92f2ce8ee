// Package cli implements the cheatsheet command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/config"
	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/render"
	"github.com/matzehuels/cheatsheet/pkg/site"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cheatsheet"

	// defaultConfigFile is picked up from the working directory when
	// --config is not given.
	defaultConfigFile = "cheatsheet.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	out        io.Writer
	hooks      *logHooks
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	return &CLI{
		Logger: logger,
		out:    os.Stdout,
		hooks:  newLogHooks(logger),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs), mainly for tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// =============================================================================
// Config, Catalog, Cache
// =============================================================================

// loadConfig reads --config, falling back to ./cheatsheet.toml and then to
// the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = defaultConfigFile
	}
	c.Logger.Debug("Loading config", "path", path)
	return config.Load(path)
}

// loadCatalog loads content.dir, or the embedded catalog when unset.
func (c *CLI) loadCatalog(cfg config.Config) (*content.Catalog, error) {
	if cfg.Content.Dir == "" {
		return content.Builtin()
	}
	c.Logger.Debug("Loading content", "dir", cfg.Content.Dir)
	return content.LoadDir(cfg.Content.Dir)
}

// newCache opens the configured cache backend. noCache forces NullCache.
func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// newBuilder wires a site builder for cfg.
func (c *CLI) newBuilder(cfg config.Config, cat *content.Catalog, ch cache.Cache) *site.Builder {
	hl := render.NewHighlighter(cfg.Build.HighlightStyle, ch, render.WithTTL(cfg.Cache.TTL.Duration))
	return site.NewBuilder(cfg.Site, cat,
		site.WithHighlighter(hl),
		site.WithPageCache(ch, cfg.Cache.TTL.Duration),
		site.WithWorkers(cfg.Build.Workers),
		site.WithLogger(c.Logger),
	)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cheatsheet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
