package syncdir

import (
	"os"
	"path/filepath"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// ClearOptions configures Clear
type ClearOptions struct {
	DryRun bool
}

// ClearResult reports what Clear removed, or would remove in dry-run mode
type ClearResult struct {
	Removed     []string
	Files       int
	Directories int
	// Missing is set when the target did not exist
	Missing bool
}

// Clear removes every entry under target, recursively, leaving target itself
// in place. A missing target is a no-op.
func Clear(fsys types.FS, target string, opts ClearOptions) (ClearResult, error) {
	logger := logging.GetLogger("syncdir.clear").With().Str("target", target).Logger()

	var result ClearResult
	entries, err := fsys.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Msg("Directory does not exist, nothing to clear")
			result.Missing = true
			return result, nil
		}
		return result, errors.Wrap(err, errors.ErrFileAccess, "Failed reading mods directory.").
			WithDetail("path", target)
	}

	for _, entry := range entries {
		path := filepath.Join(target, entry.Name())
		if !opts.DryRun {
			if err := fsys.RemoveAll(path); err != nil {
				return result, errors.Wrap(err, errors.ErrFileDelete, "Failed clearing mods directory!").
					WithDetail("path", path)
			}
		}
		result.Removed = append(result.Removed, path)
		if entry.IsDir() {
			result.Directories++
		} else {
			result.Files++
		}
		logger.Trace().Str("path", path).Bool("dryRun", opts.DryRun).Msg("Removed")
	}

	logger.Info().
		Int("files", result.Files).
		Int("directories", result.Directories).
		Bool("dryRun", opts.DryRun).
		Msg("Clear finished")
	return result, nil
}
