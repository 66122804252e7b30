package cli

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/codex-k8s/intlist/internal/config"
	"github.com/codex-k8s/intlist/internal/demo"
	"github.com/codex-k8s/intlist/internal/logging"
)

// textRenderer writes the text form of a report.
type textRenderer func(w io.Writer, report *demo.Report) error

// runScenario executes the demo with the resolved config and renders the report.
// Any list failure is logged with the operation and error code it carries.
func runScenario(cmd *cobra.Command, opts *Options, text textRenderer) error {
	logger := LoggerFromContext(cmd.Context())
	cfg := opts.Config
	if cfg == nil {
		return errors.New("configuration was not resolved")
	}

	allocator, release, err := cfg.NewAllocator()
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			logger.Warn("release allocator", "allocator", cfg.Allocator, "error", err)
		}
	}()

	logger.Debug("running scenario",
		"capacity", cfg.Capacity, "count", cfg.Count, "allocator", cfg.Allocator, "maxElems", cfg.MaxElems)

	report, err := demo.Run(demo.Options{
		Capacity:  cfg.Capacity,
		Count:     cfg.Count,
		Allocator: allocator,
		Logger:    logger,
	})
	if err != nil {
		var step *demo.StepError
		if errors.As(err, &step) {
			logger.Error("list operation failed", "op", step.Op, "index", step.Index, "code", step.Code().String())
		}
		return err
	}

	return render(cmd.OutOrStdout(), logger, cfg.Output, report, text)
}

func render(w io.Writer, logger *slog.Logger, output string, report *demo.Report, text textRenderer) error {
	switch output {
	case config.OutputYAML:
		return writeYAML(w, report)
	case config.OutputLog:
		lw := logging.NewWriter(logger, "report")
		defer lw.Flush()
		return text(lw, report)
	default:
		return text(w, report)
	}
}
