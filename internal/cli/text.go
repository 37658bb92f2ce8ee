package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/strutil"
)

// textCommand creates the "text" command with the string helpers as
// subcommands.
func (c *CLI) textCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Apply the workspace string helpers to input text",
	}
	cmd.AddCommand(c.textOp("title", "Capitalize each word", strutil.FormatName))
	cmd.AddCommand(c.textOp("kebab", "Convert to kebab-case", strutil.ToKebabCase))
	return cmd
}

func (c *CLI) textOp(name, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <text...>",
		Short:   short,
		Example: fmt.Sprintf("  cheatsheet text %s hello world", name),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, fn(strings.Join(args, " ")))
			return err
		},
	}
}
