package cli

import "github.com/spf13/cobra"

// newTraceCommand creates the "trace" subcommand that prints the growth schedule.
func newTraceCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Print every capacity doubling performed while appending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenario(cmd, opts, renderGrowth)
		},
	}
}
