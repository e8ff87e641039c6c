// Package commands implements the duckworks command line.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return New().ExecuteContext(ctx)
}

// New builds the command tree.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "duckworks",
		Short:         "Duck Works website and contact tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd(), submitCmd(), configCmd())
	return root
}
