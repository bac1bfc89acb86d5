package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treesvg/pkg/errors"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the treesvg CLI under ctx and returns an error if any
// command fails. This is the main entry point for the CLI application;
// cancelling ctx aborts the running command.
//
// Failures are reported to the user here, so callers only need to map the
// returned error to an exit code. A cancelled run stays silent.
func Execute(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		printError("%s", errors.UserMessage(err))
	}
	return err
}

// newRootCmd builds the root command with all subcommands (render,
// generate, inspect, cache).
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "treesvg",
		Short:         "treesvg draws trees as SVG images",
		Long:          `treesvg is a CLI tool for laying out rooted trees and drawing them as vector images: one circle per node, one line (or color gradient) per parent-child edge.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("treesvg %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCacheCmd())

	return root
}
