// Package cmd implements the gradientview CLI commands.
//
// The root command carries the global logging and configuration flags and
// dispatches to the registered subcommands (render, inspect, validate,
// preview).
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-drift/gradientview/cmd/gradientview/internal/config"
	"github.com/go-drift/gradientview/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// commands holds the subcommand constructors registered by init functions.
var commands []func() *cobra.Command

// RegisterCommand adds a subcommand to the CLI.
func RegisterCommand(newCmd func() *cobra.Command) {
	commands = append(commands, newCmd)
}

// NewRootCommand builds the command tree with every registered subcommand.
func NewRootCommand() *cobra.Command {
	var (
		verbose   bool
		logFile   string
		configDir string
		logOutput io.Closer
	)

	root := &cobra.Command{
		Use:   "gradientview",
		Short: "Render and preview gradient view style sheets",
		Long: `gradientview works with style sheets describing a rounded, stroked
view with a solid or gradient fill and pressed-state brightness feedback.

Sheets are YAML, TOML or JSON and are validated against a built-in schema.

Use "gradientview <command> --help" for more information about a command.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			dir := configDir
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				if dir, err = config.FindProjectRoot(wd); err != nil {
					return err
				}
			}
			cfg, err := config.Resolve(dir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if verbose {
				cfg.Verbose = true
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}

			level := log.InfoLevel
			if cfg.Verbose {
				level = log.DebugLevel
			}
			var w io.Writer = cmd.ErrOrStderr()
			if cfg.LogFile != "" {
				rotated := newLogFile(cfg.LogFile)
				logOutput = rotated
				w = io.MultiWriter(w, rotated)
			}
			logger := newLogger(w, level)
			errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: cfg.Verbose})
			logger.Debug("config resolved", "root", cfg.Root, "density", cfg.Density, "format", cfg.Format)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOutput == nil {
				return nil
			}
			return logOutput.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gradientview %s (built %s)\n", Version, BuildTime))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to a rotated file")
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding "+config.FileName+" (default: search upward from the working directory)")

	for _, newCmd := range commands {
		root.AddCommand(newCmd())
	}
	return root
}

// Execute runs the CLI with the process arguments. Structured failures are
// also sent to the error handler so they reach the log file.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	var derr *errors.DriftError
	if stderrors.As(err, &derr) {
		errors.Report(derr)
	}
	return err
}

func newLogFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}
