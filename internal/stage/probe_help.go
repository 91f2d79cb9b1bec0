package stage

import (
	"context"
	"path/filepath"
	"time"

	"github.com/flarebyte/scribe/internal/logger"
	"github.com/flarebyte/scribe/internal/probe"
)

// ProbeHelp runs the main entry with --help and keeps its stdout. Any
// failure leaves HelpText empty.
func ProbeHelp(ctx context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Manifest == nil {
		return Envelope{}, ErrMissingInput{Stage: "probe-help", Field: "manifest"}
	}
	out := in
	s := in.settings()
	if !s.Probe {
		log := logger.WithStage("probe-help")
		log.Debug().Msg("probe disabled")
		out.HelpText = ""
		return out, nil
	}
	dir := in.dir()
	out.HelpText = probe.Run(ctx, probe.Options{
		Entry:   filepath.Join(dir, in.Manifest.Main),
		Dir:     dir,
		Program: s.ProbeProgram,
		Timeout: time.Duration(s.ProbeTimeoutMs) * time.Millisecond,
	})
	return out, nil
}

func init() { Register("probe-help", ProbeHelp) }
