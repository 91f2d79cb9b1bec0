package stage

import "context"

// Branches joined by analyze-sources. They write disjoint envelope fields.
var (
	dynamicBranch = []string{"probe-help", "parse-help"}
	staticBranch  = []string{"scan-source"}
)

type branchResult struct {
	env Envelope
	err error
}

// AnalyzeSources runs the dynamic branch (probe then parse) and the static
// branch (scan) concurrently and joins their outputs.
func AnalyzeSources(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	branches := [][]string{dynamicBranch, staticBranch}
	results := runIndexedParallel(len(branches), len(branches), func(i int) branchResult {
		env, err := runSequence(ctx, in, deps, branches[i])
		return branchResult{env: env, err: err}
	})
	for _, r := range results {
		if r.err != nil {
			return Envelope{}, r.err
		}
	}
	out := in
	out.HelpText = results[0].env.HelpText
	out.Help = results[0].env.Help
	out.Scan = results[1].env.Scan
	return out, nil
}

func runSequence(ctx context.Context, in Envelope, deps Deps, names []string) (Envelope, error) {
	out := in
	var err error
	for _, name := range names {
		out, err = Run(ctx, name, out, deps)
		if err != nil {
			return Envelope{}, err
		}
	}
	return out, nil
}

func init() { Register("analyze-sources", AnalyzeSources) }
