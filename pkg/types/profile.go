package types

import (
	"path/filepath"
)

// Profile represents a directory of mod files under the profiles directory
type Profile struct {
	// Name is the profile name (the directory name)
	Name string `json:"name" yaml:"name"`

	// Path is the absolute path to the profile directory
	Path string `json:"path" yaml:"path"`

	// Mods is the number of mod files directly inside the profile
	Mods int `json:"mods" yaml:"mods"`

	// ModFiles holds the mod file paths in enumeration order
	ModFiles []string `json:"modFiles,omitempty" yaml:"modFiles,omitempty"`
}

// ModNames returns the base names of the profile's mod files
func (p *Profile) ModNames() []string {
	names := make([]string, len(p.ModFiles))
	for i, file := range p.ModFiles {
		names[i] = filepath.Base(file)
	}
	return names
}
