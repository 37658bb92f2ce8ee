package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cheatsheet.

Besides subcommands and flags, the scripts complete catalog names from the
configured content: section slugs for "show" and "list --section", and
example IDs once a section is given:

  $ cheatsheet show re<TAB>          # react
  $ cheatsheet show next <TAB>       # workspace-utils, ...

Bash:
  $ source <(cheatsheet completion bash)

Zsh (compinit must be enabled):
  $ cheatsheet completion zsh > "${fpath[1]}/_cheatsheet"

Fish:
  $ cheatsheet completion fish > ~/.config/fish/completions/cheatsheet.fish

PowerShell:
  PS> cheatsheet completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(c.out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}

// completeCatalog completes a section slug for the first argument and an
// example ID of that section for the second, each described by its title.
func (c *CLI) completeCatalog(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.loadCatalog(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	switch len(args) {
	case 0:
		for _, s := range cat.Sections {
			if strings.HasPrefix(s.Slug, toComplete) {
				out = append(out, s.Slug+"\t"+s.Title)
			}
		}
	case 1:
		s, err := cat.Section(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		for _, e := range s.Examples {
			if strings.HasPrefix(e.ID, toComplete) {
				out = append(out, e.ID+"\t"+e.Title)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
