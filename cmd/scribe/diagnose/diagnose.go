// Package diagnose implements `scribe diagnose`, which runs the pipeline
// up to a stage and prints the resulting envelope.
package diagnose

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarebyte/scribe/internal/stage"
	"github.com/spf13/cobra"
)

// NewCmd returns the diagnose command.
func NewCmd() *cobra.Command {
	var (
		untilStage string
		configPath string
		noProbe    bool
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:           "diagnose [dir]",
		Short:         "Run the pipeline through a stage and print the envelope as JSON",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if untilStage == "" {
				return fmt.Errorf("missing required flag: --until-stage (one of %s)", strings.Join(stage.Pipeline, ", "))
			}
			if untilStage == stage.Pipeline[len(stage.Pipeline)-1] {
				return errors.New("diagnose stops before write-output")
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			req := stage.Request{Dir: dir, ConfigPath: configPath, Force: true}
			if noProbe {
				p := false
				req.Probe = &p
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			env, err := stage.RunPipeline(ctx, stage.Envelope{Meta: &stage.Meta{Request: req}}, stage.Deps{Stdout: io.Discard}, untilStage)
			if err != nil {
				return err
			}
			return printEnvelope(cmd.OutOrStdout(), env, pretty)
		},
	}
	cmd.Flags().StringVar(&untilStage, "until-stage", "", "Run the pipeline through this stage name (inclusive)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (.cue)")
	cmd.Flags().BoolVar(&noProbe, "no-probe", false, "Do not run the entry point with --help")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func printEnvelope(w io.Writer, env stage.Envelope, pretty bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(env); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
