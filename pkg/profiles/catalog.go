package profiles

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// Scan returns every profile under dir in filesystem enumeration order.
// The directory is created when it does not exist yet, which yields an empty
// catalog.
func Scan(fsys types.FS, dir, extension string) ([]types.Profile, error) {
	logger := logging.GetLogger("profiles.catalog")
	logger.Trace().Str("dir", dir).Msg("Scanning profiles")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrProfileAccess, "Failed reading profiles directory.").
				WithDetail("path", dir)
		}
		if err := fsys.Mkdir(dir, 0755); err != nil {
			return nil, errors.Wrap(err, errors.ErrDirCreate, "Failed creating profiles directory.").
				WithDetail("path", dir)
		}
		logger.Info().Str("dir", dir).Msg("Created profiles directory")
		return []types.Profile{}, nil
	}

	profiles := make([]types.Profile, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		mode, err := entryType(fsys, path, entry)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrProfileAccess, "Failed reading profiles directory.").
				WithDetail("path", path)
		}
		if !mode.IsDir() {
			logger.Trace().Str("path", path).Msg("Skipping non-directory entry")
			continue
		}

		profile, err := loadProfile(fsys, entry.Name(), path, extension)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
		logger.Trace().
			Str("name", profile.Name).
			Int("mods", profile.Mods).
			Msg("Loaded profile")
	}

	logger.Info().Int("count", len(profiles)).Msg("Loaded profiles")
	return profiles, nil
}

func loadProfile(fsys types.FS, name, path, extension string) (types.Profile, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return types.Profile{}, errors.Wrap(err, errors.ErrProfileAccess, "Failed reading profile directory.").
			WithDetail("profile", name)
	}

	profile := types.Profile{Name: name, Path: path, ModFiles: []string{}}
	for _, entry := range entries {
		filePath := filepath.Join(path, entry.Name())
		mode, err := entryType(fsys, filePath, entry)
		if err != nil {
			return types.Profile{}, errors.Wrap(err, errors.ErrProfileAccess, "Failed reading profile directory.").
				WithDetail("profile", name).
				WithDetail("path", filePath)
		}
		if !mode.IsRegular() || !IsModFile(entry.Name(), extension) {
			continue
		}
		profile.ModFiles = append(profile.ModFiles, filePath)
	}
	profile.Mods = len(profile.ModFiles)
	return profile, nil
}

// entryType returns the type bits of a directory entry. Symlinks are
// followed; a dangling link reports ModeSymlink so callers skip it.
func entryType(fsys types.FS, path string, entry fs.DirEntry) (fs.FileMode, error) {
	mode := entry.Type()
	if mode&fs.ModeSymlink == 0 {
		return mode, nil
	}
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs.ModeSymlink, nil
		}
		return 0, err
	}
	return info.Mode().Type(), nil
}

// IsModFile reports whether name carries the mod extension
func IsModFile(name, extension string) bool {
	if extension == "" {
		return false
	}
	ext := filepath.Ext(name)
	return ext != "" && strings.EqualFold(ext, extension)
}
