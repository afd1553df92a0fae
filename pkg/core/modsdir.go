package core

import (
	"os"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// OpenModsDir reads the mods directory, creating it when missing. Only the
// last path element is created: a missing parent usually means the game is
// not installed, and that is reported rather than papered over.
func OpenModsDir(fsys types.FS, path string) (types.ManagedDirectory, error) {
	logger := logging.GetLogger("core.modsdir").With().Str("path", path).Logger()

	entries, err := fsys.ReadDir(path)
	if err == nil {
		logger.Debug().Int("entries", len(entries)).Msg("Opened mods directory")
		return types.ManagedDirectory{Path: path, Entries: entries}, nil
	}
	if !os.IsNotExist(err) {
		return types.ManagedDirectory{}, errors.Wrap(err, errors.ErrFileAccess, "Failed reading mods directory.").
			WithDetail("path", path)
	}

	if err := fsys.Mkdir(path, 0755); err != nil {
		return types.ManagedDirectory{}, errors.Wrap(err, errors.ErrDirCreate,
			"Failed creating mods directory. Have you installed Minecraft?").
			WithDetail("path", path)
	}
	logger.Info().Msg("Created mods directory")
	return types.ManagedDirectory{Path: path}, nil
}
