package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resume-matcher/internal/logging"
	"resume-matcher/internal/skills"
	"resume-matcher/internal/tui"
)

func runDashboard(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// the terminal belongs to the dashboard; logs go to log.file or nowhere
	logger, closer, err := logging.New(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	svc, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	opts := tui.Options{RequiredSkills: skills.DefaultRequired, ReportDir: cfg.Report.Dir}
	if len(args) == 1 {
		opts.ResumePath = args[0]
	}
	if _, err := tea.NewProgram(tui.New(svc, opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
