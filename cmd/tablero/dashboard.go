package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/tablero/internal/config"
	"github.com/kingrea/tablero/internal/logging"
	"github.com/kingrea/tablero/internal/tui"
)

func runDashboard(cmd *cobra.Command, opts *rootOptions) error {
	dir, err := opts.projectDir()
	if err != nil {
		return err
	}
	if err := config.InitDir(dir); err != nil {
		return fmt.Errorf("initialize %s directory: %w", config.Dir, err)
	}
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogsDir())
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := opts.initLogging(logFile); err != nil {
		return err
	}
	logger := logging.New("cli")
	logger.Info("starting dashboard", "dir", dir, "config", cfg.Path, "seed", cfg.Seed())

	app, err := tui.NewApp(cfg)
	if err != nil {
		return err
	}

	// Use alternate screen buffer (like vim does)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited with error", "err", err)
		return fmt.Errorf("run TUI: %w", err)
	}
	logger.Info("dashboard closed")
	return nil
}
