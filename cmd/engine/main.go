// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command engine runs checkmatier as a line-oriented engine process,
// reading commands from stdin and writing responses to stdout until it
// receives quit or stdin is closed.
package main

import (
	"fmt"
	"os"

	"github.com/brighamskarda/checkmatier/internal/config"
	"github.com/brighamskarda/checkmatier/internal/controller"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		depth         int
		configPath    string
		logLevelFlag  string
		materialScore int
		positionScore int
	)

	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Run checkmatier as a command-line engine process",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevelFlag)
			if err != nil {
				return fmt.Errorf("engine: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			cfg := config.Load(configPath)
			if cmd.Flags().Changed("depth") {
				cfg.Depth = depth
			}
			if cmd.Flags().Changed("material-weight") {
				cfg.MaterialWeight = materialScore
			}
			if cmd.Flags().Changed("positioning-weight") {
				cfg.PositioningWeight = positionScore
			}

			c := controller.New(cfg, log.Sugar())
			return c.Run(os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "search depth used by the go command when none is specified on the command line")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to a TOML configuration file")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, or error")
	cmd.Flags().IntVar(&materialScore, "material-weight", config.DefaultMaterialWeight, "weight applied to the material evaluator")
	cmd.Flags().IntVar(&positionScore, "positioning-weight", config.DefaultPositioningWeight, "weight applied to the positioning evaluator")

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zapLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
