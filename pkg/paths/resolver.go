package paths

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/filesystem"
	"github.com/jakkoble/modhandler/pkg/types"
)

// Resolver computes the mods directory. It only reads the override file and
// the environment; it never checks that the result exists.
type Resolver struct {
	FS           types.FS
	OverrideFile string
	AppDataEnv   string
	Subpath      string
	Getenv       LookupEnv
	GOOS         string
}

// Resolve returns the mods directory and whether it came from the override file.
//
// A non-empty line in the override file is authoritative: trailing separators
// are trimmed and "mods" is appended. Otherwise the application-data variable
// is joined with the default subpath, which is only supported on Windows.
func (r Resolver) Resolve() (string, bool, error) {
	fsys := r.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}

	dir, err := readOverride(fsys, r.OverrideFile)
	if err != nil {
		return "", false, err
	}
	if dir != "" {
		return filepath.Join(dir, ModsDirName), true, nil
	}

	if r.GOOS != "windows" {
		return "", false, errors.Newf(errors.ErrConfigPlatformUnsupported,
			"You are not using Windows. Put your Minecraft directory into %s (see: modhandler topics override)",
			filepath.Base(r.OverrideFile)).
			WithDetail("goos", r.GOOS).
			WithDetail("overrideFile", r.OverrideFile)
	}

	appData, ok := getenv(r.AppDataEnv)
	if !ok || strings.TrimSpace(appData) == "" {
		return "", false, errors.Newf(errors.ErrConfigEnvMissing, "%s environment variable not found.", r.AppDataEnv).
			WithDetail("env", r.AppDataEnv)
	}
	if err := ValidatePath(appData); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrConfigEnvMissing, "Failed parsing %s environment variable.", r.AppDataEnv).
			WithDetail("env", r.AppDataEnv)
	}

	return filepath.Join(appData, filepath.FromSlash(r.Subpath)), false, nil
}

// readOverride returns the cleaned directory named by the override file, or
// "" when the file is missing or holds no non-empty line.
func readOverride(fsys types.FS, path string) (string, error) {
	if path == "" {
		return "", nil
	}

	content, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.ErrConfigOverride, "Failed reading the override file.").
			WithDetail("path", path)
	}

	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.TrimRight(line, `/\`)
		if line == "" {
			// A bare separator names the filesystem root
			line = string(filepath.Separator)
		}
		if err := ValidatePath(line); err != nil {
			return "", errors.Wrap(err, errors.ErrConfigOverride, "The override file does not hold a valid path.").
				WithDetail("path", path)
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigOverride, "Failed reading the override file.").
			WithDetail("path", path)
	}
	return "", nil
}
