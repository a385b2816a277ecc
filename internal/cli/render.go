package cli

import (
	"github.com/spf13/cobra"
	"github.com/yildizm/DataPlatform/internal/formatter"
	"github.com/yildizm/DataPlatform/internal/ui"
	"github.com/yildizm/DataPlatform/internal/viewstate"
)

func newRenderCommand() *cobra.Command {
	var (
		authenticated bool
		result        string
		width         int
		height        int
		theme         string
		sidebarWidth  int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a screen without starting the workspace",
		Long: `Render one screen for the given session state and print it.

Without --authenticated the welcome screen is printed; with it, the
dashboard workspace including the analysis result (or "No data yet").

Examples:
  dataplatform render
  dataplatform render --authenticated --result 42
  dataplatform render --authenticated --width 100 --height 12
  dataplatform render --authenticated --result 42 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if theme != "" {
				cfg.UI.Theme = theme
			}
			if sidebarWidth > 0 {
				cfg.UI.SidebarWidth = sidebarWidth
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			f, err := formatter.New(output)
			if err != nil {
				return err
			}

			t, err := ui.NewTheme(cfg.UI.Theme, cfg.Theme)
			if err != nil {
				return err
			}

			state := viewstate.New()
			if authenticated {
				state.Login()
			}
			if cmd.Flags().Changed("result") {
				state.SetAnalysisResult(result)
			} else if cfg.Session.InitialResult != "" {
				state.SetAnalysisResult(cfg.Session.InitialResult)
			}

			out := ui.Render(state, ui.Layout{
				Width:        width,
				Height:       height,
				SidebarWidth: cfg.UI.SidebarWidth,
				Styles:       ui.NewStyles(t, colorEnabled(cfg.Config)),
			})
			data, err := f.Format(formatter.Capture(state, out))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&authenticated, "authenticated", "a", false, "render the workspace instead of the welcome screen")
	cmd.Flags().StringVar(&result, "result", "", "analysis result to display")
	cmd.Flags().IntVar(&width, "width", 0, "drawing width in columns (0 for natural size)")
	cmd.Flags().IntVar(&height, "height", 0, "drawing height in lines (0 for natural size)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme name (brand, high-contrast, minimal)")
	cmd.Flags().IntVar(&sidebarWidth, "sidebar-width", 0, "side panel width in columns")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, markdown)")

	return cmd
}
