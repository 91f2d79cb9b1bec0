package root

import (
	"context"

	"github.com/flarebyte/scribe/cmd/scribe/diagnose"
	"github.com/flarebyte/scribe/cmd/scribe/generate"
	"github.com/flarebyte/scribe/cmd/scribe/version"
	"github.com/flarebyte/scribe/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for scribe.
func NewRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "scribe",
		Short: "Synthesize a README from package.json, --help output and entry-point source",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(verbose, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(generate.NewCmd())
	cmd.AddCommand(diagnose.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
