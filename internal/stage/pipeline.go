package stage

import (
	"context"
	"fmt"
)

// Pipeline lists the stages of a full run in order.
var Pipeline = []string{
	"validate-target",
	"load-manifest",
	"identify-repository",
	"analyze-sources",
	"merge-records",
	"render-output",
	writeOutputStage,
}

// RunPipeline executes Pipeline through the stage named until (inclusive).
// An empty until runs every stage.
func RunPipeline(ctx context.Context, in Envelope, deps Deps, until string) (Envelope, error) {
	names := Pipeline
	if until != "" {
		idx := indexOf(Pipeline, until)
		if idx < 0 {
			return Envelope{}, fmt.Errorf("unknown pipeline stage: %s", until)
		}
		names = Pipeline[:idx+1]
	}
	out := in
	var err error
	for _, name := range names {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Envelope{}, err
		}
		if out.Meta != nil {
			out.Meta.Stage = name
		}
	}
	return out, nil
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
