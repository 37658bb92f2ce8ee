package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/cache"
	"github.com/matzehuels/cheatsheet/pkg/config"
	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/site"
	"github.com/matzehuels/cheatsheet/pkg/watch"
)

type buildOpts struct {
	outDir  string
	noCache bool
	watch   bool
}

// buildCommand creates the "build" command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the cheat sheet to static HTML",
		Long: `Render every section of the catalog to static HTML.

Output layout:
  index.html                  home page
  examples/<slug>/index.html  one page per section
  404.html                    not-found page
  assets/style.css            site and syntax stylesheet
  manifest.json               routes, titles and build ID

With --watch, edits to content.dir trigger a rebuild once the files have
been quiet for watch.debounce (default 200ms). A failed rebuild is logged
and the previous output is left untouched.`,
		Example: `  cheatsheet build
  cheatsheet build -o dist
  cheatsheet build -c team.toml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output", "o", "", "output directory (default from config: public)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when content files change")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.outDir != "" {
		cfg.Build.OutDir = opts.outDir
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch.Enabled = opts.watch
	}

	ch, err := newCache(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()

	res, cat, err := c.buildSite(ctx, cfg, ch)
	if err != nil {
		return err
	}
	if err := res.WriteDir(cfg.Build.OutDir); err != nil {
		return err
	}
	prog.done("Build complete")

	abs, _ := filepath.Abs(cfg.Build.OutDir)
	hits, misses := c.hooks.cacheCounts()
	printSuccess(c.out, "Built %s", StyleTitle.Render(cfg.Site.Title))
	printStats(c.out, len(res.Pages), cat.Len(), hits, misses)
	printFile(c.out, filepath.Join(abs, "index.html"))

	if !cfg.Watch.Enabled {
		printNextStep(c.out, "Browse from the terminal", "cheatsheet browse")
		return nil
	}
	return c.watchContent(ctx, cfg, ch, res)
}

// watchContent rebuilds into the output directory on every content change
// until ctx is cancelled.
func (c *CLI) watchContent(ctx context.Context, cfg config.Config, ch cache.Cache, res *site.Result) error {
	if cfg.Content.Dir == "" {
		fmt.Fprintln(c.out, StyleWarning.Render("  --watch ignored: building the built-in catalog (set content.dir)"))
		return nil
	}

	rebuild := func(ctx context.Context) (*site.Result, error) {
		res, _, err := c.renderSite(ctx, cfg, ch)
		return res, err
	}
	publish := func(prev, next *site.Result) error {
		if err := next.WriteDir(cfg.Build.OutDir); err != nil {
			return err
		}
		return site.RemoveStale(cfg.Build.OutDir, prev, next)
	}
	w := watch.New(cfg.Content.Dir, res, rebuild,
		watch.WithPublisher(publish),
		watch.WithDelay(cfg.Watch.Debounce.Duration),
		watch.WithLogger(loggerFromContext(ctx)))

	printKeyValue(c.out, "Watching", cfg.Content.Dir)
	printDetail(c.out, "Press Ctrl+C to stop")
	return w.Run(ctx)
}

// buildSite renders the site, showing a spinner on a terminal.
func (c *CLI) buildSite(ctx context.Context, cfg config.Config, ch cache.Cache) (*site.Result, *content.Catalog, error) {
	spin := newSpinner(ctx, os.Stderr, "Rendering pages...")
	if isTerminal(os.Stderr) {
		spin.Start()
	}
	defer spin.Stop()
	return c.renderSite(ctx, cfg, ch)
}

// renderSite loads the catalog and builds it.
func (c *CLI) renderSite(ctx context.Context, cfg config.Config, ch cache.Cache) (*site.Result, *content.Catalog, error) {
	cat, err := c.loadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	res, err := c.newBuilder(cfg, cat, ch).Build(ctx)
	if err != nil {
		return nil, nil, err
	}
	return res, cat, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
