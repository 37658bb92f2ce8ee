package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/errors"
	"github.com/matzehuels/cheatsheet/pkg/sitemap"
)

type sitemapOpts struct {
	format   string
	output   string
	detailed bool
	noCache  bool
}

// sitemapCommand creates the "sitemap" command.
func (c *CLI) sitemapCommand() *cobra.Command {
	opts := sitemapOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Render the page graph of the site as DOT or SVG",
		Example: `  cheatsheet sitemap
  cheatsheet sitemap -f svg -o sitemap.svg --detailed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSitemap(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include page size and route in node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runSitemap(cmd *cobra.Command, opts sitemapOpts) error {
	if opts.format != "dot" && opts.format != "svg" {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot or svg)", opts.format)
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	start := time.Now()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	ch, err := newCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	res, _, err := c.buildSite(ctx, cfg, ch)
	if err != nil {
		return err
	}

	data := []byte(sitemap.ToDOT(res, sitemap.Options{Detailed: opts.detailed}))
	if opts.format == "svg" {
		if data, err = sitemap.RenderSVG(ctx, string(data)); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Debug("Sitemap written", "format", opts.format, "bytes", len(data), "elapsed", time.Since(start))
	printSuccess(c.out, "Sitemap generated")
	printFile(c.out, opts.output)
	return nil
}
