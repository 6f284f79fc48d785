// cmd/tablero/main.go
//
// This is the entry point for the tablero CLI.
// When you run `tablero` from any directory, this is what executes.
//
// Flow:
// 1. Resolve the project directory and load .tablero/config.yaml
// 2. Route slog output to .tablero/logs/tablero.log (the TUI owns the terminal)
// 3. Launch the dashboard TUI
//
// `tablero snapshot` renders the same data as plain tables instead.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	dir       string
	config    string
	seed      int64
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tablero",
		Short: "Organizational health dashboard (NOM-035, LEAN 2.0, Bienestar)",
		Long: "tablero shows a synthetic organizational health dashboard in the terminal:\n" +
			"NOM-035 compliance, LEAN 2.0 adoption and wellbeing trends per department.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, opts)
		},
	}
	cmd.Version = version

	f := cmd.PersistentFlags()
	f.StringVar(&opts.dir, "dir", "", "Project directory holding .tablero/ (default: working directory)")
	f.StringVar(&opts.config, "config", "", "Path to config YAML (default: .tablero/config.yaml)")
	f.Int64Var(&opts.seed, "seed", 0, "Dataset seed (default: from config, 42)")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(newSnapshotCmd(opts))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
