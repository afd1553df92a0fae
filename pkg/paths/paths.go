package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/jakkoble/modhandler/pkg/config"
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/types"
)

// Environment variable names
const (
	// EnvRoot overrides the directory holding profiles, path.txt and modhandler.toml
	EnvRoot = "MODHANDLER_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ModsDirName is appended to the directory named in the override file
const ModsDirName = "mods"

// LookupEnv matches os.LookupEnv so tests can inject an environment
type LookupEnv func(key string) (string, bool)

// Options carries everything New needs; zero values fall back to the process
// environment and the running platform.
type Options struct {
	Root   string
	Config *config.Config
	FS     types.FS
	Getenv LookupEnv
	GOOS   string
}

// Paths holds the resolved locations. It is immutable once built.
type Paths struct {
	root         string
	profilesDir  string
	overrideFile string
	modsDir      string
	fromOverride bool
}

// New resolves all locations, including the mods directory
func New(opts Options) (*Paths, error) {
	logger := logging.GetLogger("paths")

	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.LookupEnv
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}

	root, err := ResolveRoot(opts.Root, opts.Getenv)
	if err != nil {
		return nil, err
	}

	p := &Paths{
		root:         root,
		profilesDir:  joinRoot(root, opts.Config.Paths.ProfilesDir),
		overrideFile: joinRoot(root, opts.Config.Paths.OverrideFile),
	}

	resolver := Resolver{
		FS:           opts.FS,
		OverrideFile: p.overrideFile,
		AppDataEnv:   opts.Config.Paths.AppDataEnv,
		Subpath:      opts.Config.Paths.DefaultSubpath,
		Getenv:       opts.Getenv,
		GOOS:         opts.GOOS,
	}
	modsDir, fromOverride, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	p.modsDir = modsDir
	p.fromOverride = fromOverride

	logger.Debug().
		Str("root", p.root).
		Str("profiles", p.profilesDir).
		Str("mods", p.modsDir).
		Bool("override", p.fromOverride).
		Msg("Resolved paths")

	return p, nil
}

// ResolveRoot picks the root directory: explicit value, then MODHANDLER_ROOT,
// then the current working directory. The result is absolute.
func ResolveRoot(explicit string, getenv LookupEnv) (string, error) {
	if getenv == nil {
		getenv = os.LookupEnv
	}

	root := explicit
	if root == "" {
		if env, ok := getenv(EnvRoot); ok && env != "" {
			root = env
		}
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		root = cwd
	}

	abs, err := filepath.Abs(expandHome(root))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for root").
			WithDetail("root", root)
	}
	return abs, nil
}

// Root returns the root directory
func (p *Paths) Root() string {
	return p.root
}

// ProfilesDir returns the directory holding one subdirectory per profile
func (p *Paths) ProfilesDir() string {
	return p.profilesDir
}

// OverrideFile returns the path of the override file, whether or not it exists
func (p *Paths) OverrideFile() string {
	return p.overrideFile
}

// ModsDir returns the resolved Minecraft mods directory
func (p *Paths) ModsDir() string {
	return p.modsDir
}

// FromOverride reports whether ModsDir came from the override file
func (p *Paths) FromOverride() bool {
	return p.fromOverride
}

func joinRoot(root, name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(root, name)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
