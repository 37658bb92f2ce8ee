package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// fileCacheDir resolves the file cache directory from config.
func (c *CLI) fileCacheDir() (config.Config, string, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return cfg, "", err
	}
	if cfg.Cache.Dir != "" {
		return cfg, cfg.Cache.Dir, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cfg, "", fmt.Errorf("get cache dir: %w", err)
	}
	return cfg, dir, nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached highlight fragments and pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := c.fileCacheDir()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend != config.CacheFile {
				printInfo(c.out, "Cache backend is %q; nothing to clear on disk", cfg.Cache.Backend)
				return nil
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(c.out, "Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return err
			}

			printSuccess(c.out, "Cleared %d cached entries", count)
			printDetail(c.out, "Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dir, err := c.fileCacheDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}
