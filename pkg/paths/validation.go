package paths

import (
	"strings"

	"github.com/jakkoble/modhandler/pkg/errors"
)

// ValidatePath performs basic validation on a path read from a file or the
// environment: not empty, no null bytes, within common filesystem limits.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
