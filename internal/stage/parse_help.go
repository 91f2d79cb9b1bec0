package stage

import (
	"context"

	"github.com/flarebyte/scribe/internal/helptext"
)

// ParseHelp converts probed help text into records.
func ParseHelp(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	out := in
	res := helptext.Parse(in.HelpText)
	out.Help = &res
	return out, nil
}

func init() { Register("parse-help", ParseHelp) }
