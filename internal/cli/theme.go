package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/DataPlatform/internal/emoji"
	"github.com/yildizm/DataPlatform/internal/ui"
	"github.com/yildizm/go-termfmt"
)

func newThemeCommand() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect workspace themes",
		Long: `Inspect the workspace themes, the brand palette and the content scope.

The content scope is a list of glob patterns over region names. Regions
outside the scope are drawn without the palette.`,
	}

	themeCmd.AddCommand(newThemeListCommand())
	themeCmd.AddCommand(newThemeShowCommand())
	themeCmd.AddCommand(newThemeScopeCommand())

	return themeCmd
}

func newThemeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range ui.GetAvailableThemes() {
				marker := " "
				if name == cfg.UI.Theme {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newThemeShowCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the palette and which regions it applies to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if name == "" {
				name = cfg.UI.Theme
			}
			theme, err := ui.NewTheme(name, cfg.Theme)
			if err != nil {
				return err
			}

			opts := terminalOptions(colorEnabled(cfg.Config))

			palette := termfmt.TreeItem{Label: "Palette", Children: []termfmt.TreeItem{
				{Label: "brand.yellow", Value: string(theme.Yellow)},
				{Label: "brand.dark", Value: string(theme.Dark)},
				{Label: "brand.light", Value: string(theme.Light)},
				{Label: "brand.border", Value: string(theme.Border), Last: true},
			}}

			scope := termfmt.TreeItem{Label: "Content", Value: strings.Join(theme.Content, ", ")}

			regions := termfmt.TreeItem{Label: "Regions", Last: true}
			for i, region := range ui.Regions {
				regions.Children = append(regions.Children, termfmt.TreeItem{
					Label: region,
					Value: scopeLabel(theme.InScope(region)),
					Last:  i == len(ui.Regions)-1,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Theme: %s\n", emoji.GetEmoji("theme"), theme.Name)
			fmt.Fprintln(out, termfmt.TreeViewWithOptions([]termfmt.TreeItem{palette, scope, regions}, opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "theme to show (default: configured theme)")
	return cmd
}

func newThemeScopeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scope <region>...",
		Short: "Check regions against the content scope",
		Long: `Report whether each region is styled by the configured content scope.

Known regions: ` + strings.Join(ui.Regions, ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			theme, err := ui.NewTheme(cfg.UI.Theme, cfg.Theme)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, region := range args {
				fmt.Fprintf(out, "%s: %s\n", region, scopeLabel(theme.InScope(region)))
			}
			return nil
		},
	}
}

func scopeLabel(in bool) string {
	if in {
		return "styled"
	}
	return "unstyled"
}
