package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cheatsheet/pkg/content"
	"github.com/matzehuels/cheatsheet/pkg/site"
)

// listCommand creates the "list" command.
func (c *CLI) listCommand() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections and examples",
		Example: `  cheatsheet list
  cheatsheet list --section react`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cat, err := c.loadCatalog(cfg)
			if err != nil {
				return err
			}
			if section != "" {
				s, err := cat.Section(section)
				if err != nil {
					return err
				}
				cat = &content.Catalog{Sections: []content.Section{*s}}
			}
			fmt.Fprintln(c.out, catalogTable(cat))
			printDetail(c.out, "%d sections, %d examples", len(cat.Sections), cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "only list this section")
	_ = cmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return c.completeCatalog(cmd, nil, toComplete)
	})
	return cmd
}

// catalogTable renders one row per example, grouped by section.
func catalogTable(cat *content.Catalog) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	var rows [][]string
	firstOfSection := map[int]bool{}
	for _, s := range cat.Sections {
		for i, e := range s.Examples {
			name, route := "", ""
			if i == 0 {
				firstOfSection[len(rows)] = true
				name, route = s.Title, site.SectionRoute(s.Slug)
			}
			lang := e.Language
			if lang == "" {
				lang = "—"
			}
			rows = append(rows, []string{name, e.ID, e.Title, lang, route})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Section", "ID", "Example", "Lang", "Route").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0 && firstOfSection[row]:
				return sectionStyle
			case col == 3 || col == 4:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		String()
}
