package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/DataPlatform/internal/logger"
	"github.com/yildizm/DataPlatform/internal/monitor"
	"github.com/yildizm/DataPlatform/internal/ui"
	"github.com/yildizm/DataPlatform/internal/viewstate"
)

var (
	runResult       string
	runResultFile   string
	runTheme        string
	runSidebarWidth int
	runNoAltScreen  bool
	runStats        bool
	runStatsFormat  string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive workspace",
		Long: `Start the interactive workspace.

The session opens on the welcome screen. Press enter to start a session and
reach the dashboard workspace, o to log out, ? for help and q to quit.

The analysis result shown in the workspace can be seeded with --result or
read from a file with --result-file. The file is watched and its contents
replace the result whenever it changes; an empty file clears it.

Examples:
  dataplatform
  dataplatform run --result 42
  dataplatform run --result-file ./latest-result.txt --stats`,
		Args: cobra.NoArgs,
		RunE: runWorkspace,
	}

	cmd.Flags().StringVar(&runResult, "result", "", "analysis result shown when the session starts")
	cmd.Flags().StringVar(&runResultFile, "result-file", "", "file to read the analysis result from (watched)")
	cmd.Flags().StringVar(&runTheme, "theme", "", "theme name (brand, high-contrast, minimal)")
	cmd.Flags().IntVar(&runSidebarWidth, "sidebar-width", 0, "side panel width in columns")
	cmd.Flags().BoolVar(&runNoAltScreen, "no-alt-screen", false, "draw inline instead of on the alternate screen")
	cmd.Flags().BoolVar(&runStats, "stats", false, "print a session summary on exit")
	cmd.Flags().StringVar(&runStatsFormat, "stats-format", "text", "session summary format (text, json)")

	return cmd
}

func runWorkspace(cmd *cobra.Command, args []string) error {
	if runStatsFormat != "text" && runStatsFormat != "json" {
		return fmt.Errorf("unsupported stats format: %s (use text or json)", runStatsFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override configuration
	if runResult != "" {
		cfg.Session.InitialResult = runResult
	}
	if runResultFile != "" {
		cfg.Session.ResultFile = runResultFile
	}
	if runTheme != "" {
		cfg.UI.Theme = runTheme
	}
	if runSidebarWidth > 0 {
		cfg.UI.SidebarWidth = runSidebarWidth
	}
	if runNoAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := sessionLogger(cfg.Config)
	if err != nil {
		return err
	}
	defer closeLog()

	state := viewstate.New()
	if cfg.Session.InitialResult != "" {
		state.SetAnalysisResult(cfg.Session.InitialResult)
	}
	tracker := monitor.NewTracker(state.Screen())

	color := colorEnabled(cfg.Config)
	log.InfoWithFields("session starting", []logger.Field{
		logger.F("theme", cfg.UI.Theme),
		logger.F("result_file", cfg.Session.ResultFile),
		logger.F("config", cfg.Path),
	})

	err = ui.Run(cmd.Context(), state, ui.RunOptions{
		Config:     cfg.Config,
		ConfigFile: cfg.Path,
		Color:      color,
		Logger:     log,
		Tracker:    tracker,
	})
	if err != nil {
		log.Error("session failed: %v", err)
		return err
	}

	snap := tracker.Snapshot()
	log.InfoWithFields("session ended", []logger.Field{
		logger.Duration(snap.Uptime),
		logger.F("screen", snap.CurrentScreen),
	})

	if !runStats && !isVerbose() {
		return nil
	}
	if runStatsFormat == "json" {
		return snap.WriteJSON(cmd.OutOrStdout())
	}
	return snap.WriteReport(cmd.OutOrStdout(), terminalOptions(color))
}
