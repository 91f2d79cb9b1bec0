package generate

import (
	"errors"

	"github.com/flarebyte/scribe/internal/docfile"
	"github.com/flarebyte/scribe/internal/manifest"
)

const (
	exitCodeGeneral      = 1
	exitCodeManifest     = 2
	exitCodeReadmeExists = 3
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) ExitCode() int { return e.code }
func (e exitError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, manifest.ErrManifestMissing), errors.Is(err, manifest.ErrManifestInvalid):
		return exitCodeManifest
	case errors.Is(err, docfile.ErrExists):
		return exitCodeReadmeExists
	default:
		return exitCodeGeneral
	}
}

// classify attaches an exit code to a pipeline error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	return exitError{code: exitCodeFor(err), err: err}
}
