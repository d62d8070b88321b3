package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time with -ldflags "-X mosaic/internal/cli.BuildVersion=...".
var BuildVersion = "dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "mosaic version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mosaic %s (Go version: %s)\n", BuildVersion, runtime.Version())
		},
	}
}
