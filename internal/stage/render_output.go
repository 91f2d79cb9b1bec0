package stage

import (
	"context"
	"fmt"

	"github.com/flarebyte/scribe/internal/config"
	"github.com/flarebyte/scribe/internal/render"
)

// RenderOutput renders the AnalysisResult in the configured format.
func RenderOutput(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Result == nil {
		return Envelope{}, ErrMissingInput{Stage: "render-output", Field: "result"}
	}
	s := in.settings()
	var (
		b   []byte
		err error
	)
	switch s.Format {
	case config.FormatMarkdown:
		b, err = render.Markdown(*in.Result, render.MarkdownOptions{Badges: s.Badges})
	case config.FormatJSON:
		b, err = render.JSON(*in.Result)
	case config.FormatYAML:
		b, err = render.YAML(*in.Result)
	default:
		err = fmt.Errorf("unsupported format: %q", s.Format)
	}
	if err != nil {
		return Envelope{}, fmt.Errorf("render-output: %w", err)
	}
	out := in
	out.Output = string(b)
	return out, nil
}

func init() { Register("render-output", RenderOutput) }
