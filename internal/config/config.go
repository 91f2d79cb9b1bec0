// Package config loads the optional .scribe.cue project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
)

// DefaultFileName is looked up in the project directory when no explicit
// config path is given.
const DefaultFileName = ".scribe.cue"

// ErrConfigInvalid wraps every config load or validation failure.
var ErrConfigInvalid = errors.New("invalid config")

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Config is the validated project configuration. Has* fields record which
// values were present so CLI flags can take precedence.
type Config struct {
	Path          string
	ConfigVersion string
	Probe         Probe
	Badges        bool
	HasBadges     bool
	Filter        Filter
	Output        Output
}

// Probe holds optional probe settings.
type Probe struct {
	Enabled      bool
	HasEnabled   bool
	TimeoutMs    int
	HasTimeoutMs bool
	Program      string
	HasProgram   bool
}

// Filter holds the optional Lua record predicate.
type Filter struct {
	Inline    string
	HasInline bool
}

// Output holds optional output settings.
type Output struct {
	Format    string
	HasFormat bool
}

// Resolve loads explicit when set, otherwise <dir>/.scribe.cue when it
// exists. A missing default file yields an empty Config.
func Resolve(dir, explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	p := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(p); err != nil {
		return Config{}, nil
	}
	return Load(p)
}

// Load compiles the CUE file at path and validates it.
func Load(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	c := Config{Path: path}
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("%w: invalid value for configVersion: %v", ErrConfigInvalid, err)
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("%w: unsupported configVersion: %q (supported: %s)",
			ErrConfigInvalid, c.ConfigVersion, SupportedConfigVersionsCSV())
	}
	c.Probe = parseProbeSection(v)
	c.Filter = parseFilterSection(v)
	c.Output = parseOutputSection(v)
	c.Badges, c.HasBadges = parseBadges(v)
	if err := validate(c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return c, nil
}

func validate(c Config) error {
	if c.Probe.HasTimeoutMs && c.Probe.TimeoutMs < 0 {
		return errors.New("probe.timeoutMs must be >= 0")
	}
	if c.Output.HasFormat && !IsSupportedFormat(c.Output.Format) {
		return fmt.Errorf("unsupported output.format: %q", c.Output.Format)
	}
	return nil
}

// IsSupportedFormat reports whether f names an output format.
func IsSupportedFormat(f string) bool {
	switch f {
	case FormatMarkdown, FormatJSON, FormatYAML:
		return true
	}
	return false
}
