package stage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/scribe/internal/docfile"
	"github.com/flarebyte/scribe/internal/model"
)

const writeOutputStage = "write-output"

// WriteOutput sends the rendered document to stdout or to README.md. A file
// write is followed by a short summary unless the request is quiet.
func WriteOutput(_ context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Result == nil {
		return Envelope{}, ErrMissingInput{Stage: writeOutputStage, Field: "result"}
	}
	w := deps.Stdout
	if w == nil {
		w = os.Stdout
	}
	out := in
	if in.settings().Destination == DestinationStdout {
		if _, err := io.WriteString(w, in.Output); err != nil {
			return Envelope{}, fmt.Errorf("%s: %w", writeOutputStage, err)
		}
		return out, nil
	}

	path := docfile.ReadmePath(in.dir())
	force := in.Meta != nil && in.Meta.Request.Force
	if err := docfile.Write(path, []byte(in.Output), force); err != nil {
		return Envelope{}, err
	}
	out.Written = &WriteSummary{Path: path, Bytes: len(in.Output)}
	if in.Meta != nil && in.Meta.Request.Quiet {
		return out, nil
	}
	if _, err := io.WriteString(w, summary(*out.Written, *in.Result)); err != nil {
		return Envelope{}, fmt.Errorf("%s: %w", writeOutputStage, err)
	}
	return out, nil
}

func summary(ws WriteSummary, res model.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wrote %s (%d bytes)\n", ws.Path, ws.Bytes)
	fmt.Fprintf(&b, "Package: %s@%s\n", res.Name, res.Version)
	if len(res.Commands) > 0 {
		names := make([]string, 0, len(res.Commands))
		for _, c := range res.Commands {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&b, "Commands: %s\n", strings.Join(names, ", "))
	}
	if res.Repository != nil {
		fmt.Fprintf(&b, "Repository: %s\n", res.Repository.String())
	}
	return b.String()
}

func init() { Register(writeOutputStage, WriteOutput) }
