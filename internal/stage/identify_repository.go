package stage

import (
	"context"

	"github.com/flarebyte/scribe/internal/repository"
)

// IdentifyRepository resolves the hosted repository reference. A project
// without one is not an error.
func IdentifyRepository(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Manifest == nil {
		return Envelope{}, ErrMissingInput{Stage: "identify-repository", Field: "manifest"}
	}
	out := in
	out.Repository = repository.Identify(*in.Manifest, in.dir())
	return out, nil
}

func init() { Register("identify-repository", IdentifyRepository) }
