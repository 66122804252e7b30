package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the build version, set with -ldflags "-X github.com/codex-k8s/intlist/internal/cli.Version=...".
var Version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the intlistdemo version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
