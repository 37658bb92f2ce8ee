package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/content"
)

// showCommand creates the "show" command.
func (c *CLI) showCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <section> [example]",
		Short: "Print a section or a single example in the terminal",
		Example: `  cheatsheet show react
  cheatsheet show next workspace-utils
  cheatsheet show node --raw`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: c.completeCatalog,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cat, err := c.loadCatalog(cfg)
			if err != nil {
				return err
			}

			var md string
			if len(args) == 2 {
				e, err := cat.Find(args[0], args[1])
				if err != nil {
					return err
				}
				md = e.Markdown()
			} else {
				s, err := cat.Section(args[0])
				if err != nil {
					return err
				}
				md = sectionMarkdown(s)
			}
			return c.printMarkdown(md, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	return cmd
}

// sectionMarkdown joins every example of s under the section heading.
func sectionMarkdown(s *content.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.PageHeading())
	if s.Summary != "" {
		b.WriteString(s.Summary)
		b.WriteString("\n\n")
	}
	for _, e := range s.Examples {
		// Demote example headings one level below the section.
		b.WriteString("#")
		b.WriteString(e.Markdown())
		b.WriteString("\n")
	}
	return b.String()
}

func (c *CLI) printMarkdown(md string, raw bool) error {
	if raw || !isTerminal(c.out) {
		_, err := fmt.Fprint(c.out, md)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = fmt.Fprint(c.out, out)
	return err
}
