package stage

import (
	"context"
	"path/filepath"

	"github.com/flarebyte/scribe/internal/scan"
)

// ScanSource applies the static rules to the main entry and every bin
// target.
func ScanSource(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Manifest == nil {
		return Envelope{}, ErrMissingInput{Stage: "scan-source", Field: "manifest"}
	}
	dir := in.dir()
	entries := in.Manifest.Entries()
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, filepath.Join(dir, e))
	}
	res := scan.Scan(paths)
	out := in
	out.Scan = &res
	return out, nil
}

func init() { Register("scan-source", ScanSource) }
