package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codex-k8s/intlist/internal/config"
)

// resolveConfig loads INTLIST_* settings and applies the flags that were set
// explicitly on the command line on top of them.
func resolveConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	baseDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.LoadOptions{
		BaseDir:     baseDir,
		EnvFiles:    opts.EnvFiles,
		Environment: opts.Environment,
	})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = opts.Capacity
	}
	if flags.Changed("count") {
		cfg.Count = opts.Count
	}
	if flags.Changed("allocator") {
		cfg.Allocator = opts.Allocator
	}
	if flags.Changed("max-elems") {
		cfg.MaxElems = opts.MaxElems
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
