package syncdir

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// ErrorPolicy decides what Copy does when one entry fails
type ErrorPolicy int

const (
	// AbortOnError stops at the first failure. Already copied files stay.
	AbortOnError ErrorPolicy = iota
	// ContinueOnError copies everything it can and reports all failures.
	ContinueOnError
)

func (p ErrorPolicy) String() string {
	if p == ContinueOnError {
		return "continue"
	}
	return "abort"
}

// CopyOptions configures Copy
type CopyOptions struct {
	Policy ErrorPolicy
	DryRun bool
}

// CopyResult summarizes a copy
type CopyResult struct {
	Files       int
	Directories int
	Bytes       int64
	// Planned lists every entry in walk order; filled in dry-run mode only
	Planned  []SyncEntry
	Failures []error
}

// Copy mirrors src into dst, creating dst and intermediate directories as
// needed. Existing destination files are overwritten unconditionally.
func Copy(fsys types.FS, src, dst string, opts CopyOptions) (CopyResult, error) {
	logger := logging.GetLogger("syncdir.copy")
	done := logging.LogOperationStart(logger, "copy")
	defer done()

	var result CopyResult
	for entry, err := range Walk(fsys, src, dst) {
		if err == nil {
			if opts.DryRun {
				result.Planned = append(result.Planned, entry)
				count(&result, entry)
				continue
			}
			err = apply(fsys, entry)
		}

		if err != nil {
			logger.Debug().Err(err).Str("source", entry.Source).Msg("Copy step failed")
			result.Failures = append(result.Failures, err)
			if opts.Policy == AbortOnError {
				return result, errors.Wrap(err, errors.ErrFileCopy, "Failed copying mods directory!").
					WithDetail("source", src).
					WithDetail("destination", dst)
			}
			continue
		}

		count(&result, entry)
		logger.Trace().Str("source", entry.Source).Str("destination", entry.Destination).Msg("Copied")
	}

	if len(result.Failures) > 0 {
		return result, errors.Wrap(stderrors.Join(result.Failures...), errors.ErrFileCopy, "Failed copying mods directory!").
			WithDetail("source", src).
			WithDetail("destination", dst).
			WithDetail("failures", len(result.Failures))
	}

	logger.Info().
		Int("files", result.Files).
		Int("directories", result.Directories).
		Int64("bytes", result.Bytes).
		Bool("dryRun", opts.DryRun).
		Msg("Copy finished")
	return result, nil
}

func count(result *CopyResult, entry SyncEntry) {
	if entry.IsDir {
		result.Directories++
		return
	}
	result.Files++
	result.Bytes += entry.Size
}

func apply(fsys types.FS, entry SyncEntry) error {
	if entry.IsDir {
		if err := fsys.MkdirAll(entry.Destination, 0755); err != nil {
			return errors.Wrap(err, errors.ErrDirCreate, "Failed creating directory.").
				WithDetail("path", entry.Destination)
		}
		return nil
	}
	return copyFile(fsys, entry)
}

func copyFile(fsys types.FS, entry SyncEntry) (err error) {
	in, err := fsys.Open(entry.Source)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "Failed opening file.").
			WithDetail("path", entry.Source)
	}
	defer in.Close()

	perm := entry.Mode.Perm()
	if perm == 0 {
		perm = fs.FileMode(0644)
	}
	out, err := fsys.Create(entry.Destination, perm)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileCreate, "Failed creating file.").
			WithDetail("path", entry.Destination)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, errors.ErrFileCopy, "Failed writing file.").
				WithDetail("path", entry.Destination)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "Failed writing file.").
			WithDetail("path", entry.Destination)
	}
	return nil
}
