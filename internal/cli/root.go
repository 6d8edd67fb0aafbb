// Package cli implements the svgling command-line interface.
//
// This package provides commands for rendering linguistic constituent
// trees written in bracket notation to SVG, DOT, and PNG, for browsing
// trees interactively in the terminal, and for serving rendered trees
// over HTTP for browser preview. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - render: Lay out a bracket-notation tree and emit SVG/DOT/PNG
//   - view: Browse a tree interactively in the terminal
//   - serve: HTTP preview endpoint for rendered trees
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanjibnarzary/svgling/pkg/buildinfo"
)

// Execute runs the svgling CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (render,
// view, serve), configures logging based on the --verbose flag, and
// executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "svgling",
		Short:        "svgling renders linguistic trees as SVG",
		Long:         `svgling computes 2D layouts for constituent trees written in bracket notation and renders them as SVG using only percentage and em units, so the output adapts to whatever font the viewer uses.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
