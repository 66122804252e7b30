// Package cli defines the command-line interface for the intlist driver.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/intlist/internal/config"
	"github.com/codex-k8s/intlist/internal/env"
	"github.com/codex-k8s/intlist/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	EnvFiles  []string
	Capacity  uint
	Count     int
	Allocator string
	MaxElems  int
	Output    string
	LogLevel  string

	// Environment replaces the process environment when non-nil.
	Environment env.Vars
	// Config is the resolved configuration, set before any command runs.
	Config *config.Config
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	return execute(args, logger, &Options{}, os.Stdout, os.Stderr)
}

func execute(args []string, logger *slog.Logger, opts *Options, stdout, stderr io.Writer) error {
	if logger == nil {
		logger = logging.NewLogger(stderr, logging.LevelInfo)
	}

	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(context.WithValue(context.Background(), loggerKey{}, logger))
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "intlistdemo",
		Short:         "intlistdemo exercises a growable int list",
		Long:          "intlistdemo constructs an int list with a small capacity, appends more values than it holds to force growth, reads every value back and destroys the list.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			opts.Config = cfg

			level := logging.ParseLevel(cfg.LogLevel)
			logger := logging.NewLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd, opts, renderValues)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&opts.EnvFiles, "env-file", nil, "Path to .env file with INTLIST_* variables (repeatable)")
	flags.UintVar(&opts.Capacity, "capacity", 4, "Initial list capacity")
	flags.IntVar(&opts.Count, "count", 20, "Number of values to append")
	flags.StringVar(&opts.Allocator, "allocator", config.AllocatorHeap, "Buffer allocator (heap, manual)")
	flags.IntVar(&opts.MaxElems, "max-elems", 0, "Largest buffer the allocator may hand out, in elements (0 = unlimited)")
	flags.StringVarP(&opts.Output, "output", "o", config.OutputText, "Output format (text, yaml, log)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newTraceCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
