package stage

import (
	"github.com/flarebyte/scribe/internal/helptext"
	"github.com/flarebyte/scribe/internal/manifest"
	"github.com/flarebyte/scribe/internal/model"
	"github.com/flarebyte/scribe/internal/scan"
)

// Destinations for the rendered document.
const (
	DestinationReadme = "readme"
	DestinationStdout = "stdout"
)

// Request holds the caller's options. Pointer fields stay nil when the
// option was not given explicitly so the config file can supply them.
type Request struct {
	Dir            string  `json:"dir"`
	ConfigPath     string  `json:"configPath,omitempty"`
	Stdout         bool    `json:"stdout,omitempty"`
	Force          bool    `json:"force,omitempty"`
	Quiet          bool    `json:"quiet,omitempty"`
	Format         *string `json:"format,omitempty"`
	Badges         *bool   `json:"badges,omitempty"`
	Probe          *bool   `json:"probe,omitempty"`
	ProbeTimeoutMs *int    `json:"probeTimeoutMs,omitempty"`
}

// Settings are the effective options after applying config and defaults.
type Settings struct {
	ConfigPath     string `json:"configPath,omitempty"`
	Format         string `json:"format"`
	Destination    string `json:"destination"`
	Badges         bool   `json:"badges"`
	Probe          bool   `json:"probe"`
	ProbeTimeoutMs int    `json:"probeTimeoutMs"`
	ProbeProgram   string `json:"probeProgram,omitempty"`
	FilterInline   string `json:"filterInline,omitempty"`
}

// Meta holds run metadata with deterministic JSON field order.
type Meta struct {
	Stage    string    `json:"stage,omitempty"`
	Request  Request   `json:"request"`
	Settings *Settings `json:"settings,omitempty"`
}

// Envelope is the JSON-serializable contract between stages. Each stage
// fills its own fields and passes the rest through.
type Envelope struct {
	Meta       *Meta                 `json:"meta,omitempty"`
	Manifest   *manifest.Manifest    `json:"manifest,omitempty"`
	Repository *model.RepositoryRef  `json:"repository,omitempty"`
	HelpText   string                `json:"helpText,omitempty"`
	Help       *helptext.Result      `json:"help,omitempty"`
	Scan       *scan.Result          `json:"scan,omitempty"`
	Result     *model.AnalysisResult `json:"result,omitempty"`
	Output     string                `json:"output,omitempty"`
	Written    *WriteSummary         `json:"written,omitempty"`
}

// WriteSummary describes a README written to disk.
type WriteSummary struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

func (e Envelope) dir() string {
	if e.Meta == nil || e.Meta.Request.Dir == "" {
		return "."
	}
	return e.Meta.Request.Dir
}

func (e Envelope) settings() Settings {
	if e.Meta == nil || e.Meta.Settings == nil {
		return defaultSettings()
	}
	return *e.Meta.Settings
}
