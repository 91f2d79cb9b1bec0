package stage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flarebyte/scribe/internal/config"
	"github.com/flarebyte/scribe/internal/docfile"
	"github.com/flarebyte/scribe/internal/probe"
)

func defaultSettings() Settings {
	return Settings{
		Format:         config.FormatMarkdown,
		Destination:    DestinationReadme,
		Probe:          true,
		ProbeTimeoutMs: int(probe.DefaultTimeout.Milliseconds()),
	}
}

// resolveSettings layers defaults, then the config file, then explicit
// request options.
func resolveSettings(req Request, cfg config.Config) (Settings, error) {
	s := defaultSettings()
	s.ConfigPath = cfg.Path
	if cfg.Output.HasFormat {
		s.Format = cfg.Output.Format
	}
	if cfg.HasBadges {
		s.Badges = cfg.Badges
	}
	if cfg.Probe.HasEnabled {
		s.Probe = cfg.Probe.Enabled
	}
	if cfg.Probe.HasTimeoutMs {
		s.ProbeTimeoutMs = cfg.Probe.TimeoutMs
	}
	if cfg.Probe.HasProgram {
		s.ProbeProgram = cfg.Probe.Program
	}
	if cfg.Filter.HasInline {
		s.FilterInline = cfg.Filter.Inline
	}

	if req.Format != nil {
		if !config.IsSupportedFormat(*req.Format) {
			return Settings{}, fmt.Errorf("unsupported format: %q (expected markdown, json or yaml)", *req.Format)
		}
		s.Format = *req.Format
	}
	if req.Badges != nil {
		s.Badges = *req.Badges
	}
	if req.Probe != nil {
		s.Probe = *req.Probe
	}
	if req.ProbeTimeoutMs != nil {
		if *req.ProbeTimeoutMs < 0 {
			return Settings{}, fmt.Errorf("invalid probe timeout: %d", *req.ProbeTimeoutMs)
		}
		s.ProbeTimeoutMs = *req.ProbeTimeoutMs
	}
	if req.Stdout || s.Format != config.FormatMarkdown {
		s.Destination = DestinationStdout
	}
	return s, nil
}

// ValidateTarget checks the project directory, resolves the effective
// settings and applies the README overwrite guard before any work is done.
func ValidateTarget(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	out := in
	if out.Meta == nil {
		out.Meta = &Meta{}
	}
	dir := out.dir()
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return Envelope{}, fmt.Errorf("%w: %s", ErrTargetMissing, dir)
	}
	// Later stages join entry paths onto dir and run the probe inside it,
	// so it must not depend on the process working directory.
	if dir, err = filepath.Abs(dir); err != nil {
		return Envelope{}, fmt.Errorf("%w: %s: %v", ErrTargetMissing, out.dir(), err)
	}
	out.Meta.Request.Dir = dir
	cfg, err := config.Resolve(dir, out.Meta.Request.ConfigPath)
	if err != nil {
		return Envelope{}, err
	}
	s, err := resolveSettings(out.Meta.Request, cfg)
	if err != nil {
		return Envelope{}, err
	}
	if s.Destination == DestinationReadme {
		if err := docfile.CheckWritable(docfile.ReadmePath(dir), out.Meta.Request.Force); err != nil {
			return Envelope{}, err
		}
	}
	out.Meta.Settings = &s
	return out, nil
}

func init() { Register("validate-target", ValidateTarget) }
