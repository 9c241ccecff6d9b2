// File: cmd/dsctl/root.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ds/internal/logger"
)

type globalFlags struct {
	logLevel    string
	development bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:   "dsctl",
		Short: "Exercise the hioload-ds containers",
		Long: `dsctl replays the reference container scenarios and runs randomized
push/pop workloads against a chosen container, printing allocation
accounting when done.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return installLogger(g.logLevel, g.development)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.L().Sync()
		},
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&g.development, "dev", false, "Human readable log output")

	root.AddCommand(newScenarioCmd(), newRunCmd())
	return root
}

func installLogger(level string, development bool) error {
	l, err := logger.New(level, development)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	logger.Set(l)
	logger.L().Debug("logger installed", zap.String("level", level))
	return nil
}
