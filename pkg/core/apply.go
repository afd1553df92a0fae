package core

import (
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/filesystem"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/syncdir"
	"github.com/jakkoble/modhandler/pkg/types"
)

// ApplyOptions contains options for copying a profile into the mods directory
type ApplyOptions struct {
	Profile types.Profile
	ModsDir string
	// Clear empties the mods directory before copying
	Clear      bool
	DryRun     bool
	Policy     syncdir.ErrorPolicy
	FileSystem types.FS
}

// ApplyResult describes what ApplyProfile did, or would do in dry-run mode
type ApplyResult struct {
	Profile string
	ModsDir string
	DryRun  bool
	// Cleared is nil when no clear was requested
	Cleared *syncdir.ClearResult
	Copied  syncdir.CopyResult
}

// ApplyProfile copies the profile's directory tree into the mods directory.
// Existing files with the same name are overwritten; other files stay unless
// Clear is set.
func ApplyProfile(opts ApplyOptions) (*ApplyResult, error) {
	logger := logging.GetLogger("core.apply")
	logger.Info().
		Str("profile", opts.Profile.Name).
		Str("modsDir", opts.ModsDir).
		Bool("clear", opts.Clear).
		Bool("dryRun", opts.DryRun).
		Msg("Applying profile")

	if opts.Profile.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "No profile selected.")
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &ApplyResult{
		Profile: opts.Profile.Name,
		ModsDir: opts.ModsDir,
		DryRun:  opts.DryRun,
	}

	if opts.Clear {
		cleared, err := ClearMods(ClearOptions{ModsDir: opts.ModsDir, DryRun: opts.DryRun, FileSystem: fs})
		if err != nil {
			return result, err
		}
		result.Cleared = cleared
	}

	copied, err := syncdir.Copy(fs, opts.Profile.Path, opts.ModsDir, syncdir.CopyOptions{
		Policy: opts.Policy,
		DryRun: opts.DryRun,
	})
	result.Copied = copied
	if err != nil {
		logger.Error().Err(err).Str("profile", opts.Profile.Name).Msg("Copy failed")
		return result, err
	}

	logger.Info().
		Str("profile", opts.Profile.Name).
		Int("files", copied.Files).
		Msg("Profile applied")
	return result, nil
}

// ClearOptions contains options for emptying the mods directory
type ClearOptions struct {
	ModsDir    string
	DryRun     bool
	FileSystem types.FS
}

// ClearMods removes everything inside the mods directory
func ClearMods(opts ClearOptions) (*syncdir.ClearResult, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	result, err := syncdir.Clear(fs, opts.ModsDir, syncdir.ClearOptions{DryRun: opts.DryRun})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
