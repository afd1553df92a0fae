package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jakkoble/modhandler/pkg/config"
	"github.com/jakkoble/modhandler/pkg/core"
	"github.com/jakkoble/modhandler/pkg/filesystem"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/jakkoble/modhandler/pkg/paths"
	"github.com/jakkoble/modhandler/pkg/profiles"
	"github.com/jakkoble/modhandler/pkg/types"
	"github.com/jakkoble/modhandler/pkg/ui"
	"github.com/jakkoble/modhandler/pkg/ui/display"
	"github.com/jakkoble/modhandler/pkg/ui/keys"
	"github.com/mattn/go-isatty"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	root      string
	noPause   bool
}

// overrides maps flags onto configuration keys; they win over every file
// and environment layer
func (o *globalOptions) overrides() map[string]interface{} {
	overrides := map[string]interface{}{}
	if o.noPause {
		overrides["ui.pause_on_exit"] = false
	}
	return overrides
}

// app is everything read from disk and the environment at startup. It is
// built once per command and passed down; nothing below it looks at the
// environment again.
type app struct {
	cfg   *config.Config
	paths *paths.Paths
	fs    types.FS
}

// loadApp resolves the root, loads the configuration and resolves paths
func loadApp(opts *globalOptions) (*app, error) {
	cfg, root, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, root)
}

// loadConfig resolves the root directory and reads its configuration
func loadConfig(opts *globalOptions) (*config.Config, string, error) {
	root, err := paths.ResolveRoot(opts.root, os.LookupEnv)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Load(config.LoadOptions{Root: root, Overrides: opts.overrides()})
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// newApp resolves every path for an already loaded configuration
func newApp(cfg *config.Config, root string) (*app, error) {
	logger := logging.GetLogger("cmd.app")

	fs := filesystem.NewOS()
	p, err := paths.New(paths.Options{Root: root, Config: cfg, FS: fs})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", p.Root()).
		Str("mods", p.ModsDir()).
		Bool("override", p.FromOverride()).
		Msg("Application loaded")
	return &app{cfg: cfg, paths: p, fs: fs}, nil
}

// catalog scans the profiles directory
func (a *app) catalog() ([]types.Profile, error) {
	return profiles.Scan(a.fs, a.paths.ProfilesDir(), a.cfg.Profiles.Extension)
}

// catalogView scans profiles and reads the mods directory without creating it
func (a *app) catalogView() (*display.CatalogView, error) {
	catalog, err := a.catalog()
	if err != nil {
		return nil, err
	}
	modsDir := types.ManagedDirectory{Path: a.paths.ModsDir()}
	if entries, err := a.fs.ReadDir(modsDir.Path); err == nil {
		modsDir.Entries = entries
	}
	return display.NewCatalogView(catalog, modsDir), nil
}

func (a *app) pathsView() *display.PathsView {
	return &display.PathsView{
		Root:         a.paths.Root(),
		ProfilesDir:  a.paths.ProfilesDir(),
		OverrideFile: a.paths.OverrideFile(),
		ModsDir:      a.paths.ModsDir(),
		FromOverride: a.paths.FromOverride(),
		ConfigFile:   filepath.Join(a.paths.Root(), config.FileName),
		LogFile:      logging.LogFilePath(),
	}
}

// openModsDir is used by commands that write to the mods directory
func (a *app) openModsDir() (types.ManagedDirectory, error) {
	return core.OpenModsDir(a.fs, a.paths.ModsDir())
}

// newKeyReader reads raw keys from a terminal and falls back to the byte
// stream for pipes and tests
func newKeyReader(in io.Reader) keys.Reader {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return keys.NewTerminal()
	}
	return keys.NewScripted(in)
}

// isStyled reports whether w is a color-capable terminal
func isStyled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsStyled(f)
}
