package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kingrea/tablero/internal/config"
	"github.com/kingrea/tablero/internal/logging"
)

func (o *rootOptions) projectDir() (string, error) {
	if o.dir != "" {
		return o.dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// loadConfig applies defaults, file, environment and finally flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := o.projectDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir, o.config)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.SetSeed(o.seed)
	}
	return cfg, nil
}

func (o *rootOptions) initLogging(w io.Writer) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	switch o.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", o.logFormat)
	}
	logging.Init(level, o.logFormat, w)
	return nil
}
