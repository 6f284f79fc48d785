package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kingrea/tablero/internal/dataset"
	"github.com/kingrea/tablero/internal/filter"
	"github.com/kingrea/tablero/internal/logging"
	"github.com/kingrea/tablero/internal/report"
)

var snapshotNow = time.Now

type snapshotFlags struct {
	format      string
	departments string
}

func newSnapshotCmd(opts *rootOptions) *cobra.Command {
	flags := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the dashboard as plain tables",
		Long: "Render KPIs, the NOM-035, LEAN 2.0 and wellbeing tables and both alert\n" +
			"lists for the selected departments without starting the TUI.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd, opts, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "ascii", "Output format: ascii or markdown")
	f.StringVar(&flags.departments, "departments", "", "Comma-separated departments (default: all)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, opts *rootOptions, flags *snapshotFlags) error {
	if err := opts.initLogging(cmd.ErrOrStderr()); err != nil {
		return err
	}
	mode, err := report.ParseMode(flags.format)
	if err != nil {
		return err
	}
	depts, err := report.ParseDepartments(flags.departments)
	if err != nil {
		return err
	}
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	start, end := cfg.Range()
	state := filter.NewState(start, end)
	state.SetDepartments(depts)

	logging.New("snapshot").Debug("rendering snapshot",
		"seed", cfg.Seed(), "format", mode.String(), "departments", len(state.Selected()))

	return report.Render(cmd.OutOrStdout(), report.Snapshot{
		Tables: dataset.Load(cfg.Seed()),
		State:  state,
		Cards:  cfg.Cards(),
		At:     snapshotNow(),
	}, mode)
}
