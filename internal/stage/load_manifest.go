package stage

import (
	"context"

	"github.com/flarebyte/scribe/internal/manifest"
)

// LoadManifest reads package.json from the project directory.
func LoadManifest(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	m, err := manifest.Load(in.dir())
	if err != nil {
		return Envelope{}, err
	}
	out := in
	out.Manifest = &m
	return out, nil
}

func init() { Register("load-manifest", LoadManifest) }
