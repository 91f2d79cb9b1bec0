// Package generate implements `scribe generate`.
package generate

import (
	"context"

	"github.com/flarebyte/scribe/internal/stage"
	"github.com/spf13/cobra"
)

type options struct {
	json           bool
	format         string
	stdout         bool
	force          bool
	badges         bool
	noProbe        bool
	probeTimeoutMs int
	configPath     string
	quiet          bool
}

// NewCmd returns the generate command.
func NewCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "generate [dir]",
		Short:         "Generate README.md for the project in dir (default \".\")",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			in := stage.Envelope{Meta: &stage.Meta{Request: buildRequest(cmd, opts, dir)}}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			_, err := stage.RunPipeline(ctx, in, stage.Deps{Stdout: cmd.OutOrStdout()}, "")
			return classify(err)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.json, "json", false, "Print the analysis as JSON instead of writing README.md")
	f.StringVar(&opts.format, "format", "markdown", "Output format: markdown|json|yaml")
	f.BoolVar(&opts.stdout, "stdout", false, "Print Markdown to stdout instead of writing README.md")
	f.BoolVar(&opts.force, "force", false, "Overwrite an existing README.md")
	f.BoolVar(&opts.badges, "badges", false, "Add npm, license and GitHub badges")
	f.BoolVar(&opts.noProbe, "no-probe", false, "Do not run the entry point with --help")
	f.IntVar(&opts.probeTimeoutMs, "probe-timeout", 2000, "Probe timeout in milliseconds")
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (.cue); defaults to <dir>/.scribe.cue")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the summary after writing README.md")
	return cmd
}

// buildRequest maps flags to a stage request. Only flags given on the
// command line override the config file.
func buildRequest(cmd *cobra.Command, opts *options, dir string) stage.Request {
	req := stage.Request{
		Dir:        dir,
		ConfigPath: opts.configPath,
		Stdout:     opts.stdout,
		Force:      opts.force,
		Quiet:      opts.quiet,
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		f := opts.format
		req.Format = &f
	}
	if opts.json {
		f := "json"
		req.Format = &f
	}
	if flags.Changed("badges") {
		b := opts.badges
		req.Badges = &b
	}
	if flags.Changed("no-probe") {
		p := !opts.noProbe
		req.Probe = &p
	}
	if flags.Changed("probe-timeout") {
		ms := opts.probeTimeoutMs
		req.ProbeTimeoutMs = &ms
	}
	return req
}
