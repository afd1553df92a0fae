// Package display holds the view models every output format renders. They
// are plain data with json and yaml tags, built from core results.
package display

import (
	"github.com/jakkoble/modhandler/pkg/core"
	"github.com/jakkoble/modhandler/pkg/syncdir"
	"github.com/jakkoble/modhandler/pkg/types"
)

// ProfileView is one menu entry
type ProfileView struct {
	Number   int      `json:"number" yaml:"number"`
	Name     string   `json:"name" yaml:"name"`
	Path     string   `json:"path" yaml:"path"`
	Mods     int      `json:"mods" yaml:"mods"`
	ModFiles []string `json:"modFiles,omitempty" yaml:"modFiles,omitempty"`
}

// CatalogView is the profile list plus the state of the mods directory
type CatalogView struct {
	ModsDir     string        `json:"modsDir" yaml:"modsDir"`
	ModsEntries int           `json:"modsEntries" yaml:"modsEntries"`
	ModsContent []string      `json:"modsContent,omitempty" yaml:"modsContent,omitempty"`
	Profiles    []ProfileView `json:"profiles" yaml:"profiles"`
}

// PathsView shows where modhandler reads and writes
type PathsView struct {
	Root         string `json:"root" yaml:"root"`
	ProfilesDir  string `json:"profilesDir" yaml:"profilesDir"`
	OverrideFile string `json:"overrideFile" yaml:"overrideFile"`
	ModsDir      string `json:"modsDir" yaml:"modsDir"`
	FromOverride bool   `json:"fromOverride" yaml:"fromOverride"`
	ConfigFile   string `json:"configFile" yaml:"configFile"`
	LogFile      string `json:"logFile" yaml:"logFile"`
}

// ApplyView summarizes a profile copy
type ApplyView struct {
	Profile     string     `json:"profile" yaml:"profile"`
	ModsDir     string     `json:"modsDir" yaml:"modsDir"`
	DryRun      bool       `json:"dryRun" yaml:"dryRun"`
	Cleared     *ClearView `json:"cleared,omitempty" yaml:"cleared,omitempty"`
	Files       int        `json:"files" yaml:"files"`
	Directories int        `json:"directories" yaml:"directories"`
	Bytes       int64      `json:"bytes" yaml:"bytes"`
	Planned     []string   `json:"planned,omitempty" yaml:"planned,omitempty"`
}

// ClearView summarizes a clear
type ClearView struct {
	ModsDir     string   `json:"modsDir" yaml:"modsDir"`
	DryRun      bool     `json:"dryRun" yaml:"dryRun"`
	Missing     bool     `json:"missing" yaml:"missing"`
	Files       int      `json:"files" yaml:"files"`
	Directories int      `json:"directories" yaml:"directories"`
	Removed     []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// NewCatalogView numbers the profiles the way the interactive menu does
func NewCatalogView(profiles []types.Profile, modsDir types.ManagedDirectory) *CatalogView {
	view := &CatalogView{
		ModsDir:     modsDir.Path,
		ModsEntries: modsDir.Count(),
		ModsContent: modsDir.Names(),
		Profiles:    make([]ProfileView, 0, len(profiles)),
	}
	for i, p := range profiles {
		view.Profiles = append(view.Profiles, ProfileView{
			Number:   i + 1,
			Name:     p.Name,
			Path:     p.Path,
			Mods:     p.Mods,
			ModFiles: p.ModNames(),
		})
	}
	return view
}

// NewClearView converts a clear result
func NewClearView(modsDir string, dryRun bool, result *syncdir.ClearResult) *ClearView {
	view := &ClearView{ModsDir: modsDir, DryRun: dryRun}
	if result == nil {
		return view
	}
	view.Missing = result.Missing
	view.Files = result.Files
	view.Directories = result.Directories
	view.Removed = result.Removed
	return view
}

// NewApplyView converts an apply result
func NewApplyView(result *core.ApplyResult) *ApplyView {
	view := &ApplyView{
		Profile:     result.Profile,
		ModsDir:     result.ModsDir,
		DryRun:      result.DryRun,
		Files:       result.Copied.Files,
		Directories: result.Copied.Directories,
		Bytes:       result.Copied.Bytes,
	}
	if result.Cleared != nil {
		view.Cleared = NewClearView(result.ModsDir, result.DryRun, result.Cleared)
	}
	for _, entry := range result.Copied.Planned {
		view.Planned = append(view.Planned, entry.Destination)
	}
	return view
}
