package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/buildinfo"
	"github.com/matzehuels/cheatsheet/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The logger is attached to each command's context before it runs, so
// subcommands retrieve it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Cheatsheet builds a code patterns cheat sheet",
		Long: `Cheatsheet renders a catalog of code examples (React hooks, Next.js routing,
Node.js middleware, JavaScript design patterns) into a static website,
rebuilds it as content changes, and browses it from the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetBuildHooks(c.hooks)
			observability.SetCacheHooks(c.hooks)
			observability.SetWatchHooks(c.hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default ./"+defaultConfigFile+" if present)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.sitemapCommand())
	root.AddCommand(c.textCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
