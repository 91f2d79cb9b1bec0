package stage

import (
	"errors"
	"fmt"
)

// ErrTargetMissing is returned when the project directory does not exist.
var ErrTargetMissing = errors.New("target directory not found")

// ErrMissingInput is returned when a stage runs before its inputs exist.
type ErrMissingInput struct {
	Stage string
	Field string
}

func (e ErrMissingInput) Error() string {
	return fmt.Sprintf("%s: missing %s (run the earlier stages first)", e.Stage, e.Field)
}
