// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem, pkg/types
// PURPOSE: Orchestrate test environments with a root, profiles and mods dir

package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/jakkoble/modhandler/pkg/filesystem"
	"github.com/jakkoble/modhandler/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a root directory laid out the way modhandler
// expects: a profiles directory next to an optional override file, plus a
// separate mods directory standing in for the game's.
type TestEnvironment struct {
	Root        string
	ProfilesDir string
	ModsDir     string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// FileTree represents a directory structure for testing. Values are either
// file contents (string) or nested FileTrees.
type FileTree map[string]interface{}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.FS = filesystem.NewOS()
		env.Root = filepath.Join(base, "handler")
		env.ModsDir = filepath.Join(base, "minecraft", "mods")
	default:
		env.FS = filesystem.NewMemory()
		env.Root = "/handler"
		env.ModsDir = "/minecraft/mods"
	}
	env.ProfilesDir = filepath.Join(env.Root, "profiles")

	for _, dir := range []string{env.ProfilesDir, env.ModsDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
	return env
}

// WithFileTree creates a file tree under the root directory
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.Root, tree)
}

// WithProfile creates profiles/<name> with the given files
func (env *TestEnvironment) WithProfile(name string, tree FileTree) string {
	env.t.Helper()
	dir := filepath.Join(env.ProfilesDir, name)
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create profile %s: %v", dir, err)
	}
	CreateFileTree(env.t, env.FS, dir, tree)
	return dir
}

// WithMods puts files into the mods directory
func (env *TestEnvironment) WithMods(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.ModsDir, tree)
}

// WithOverride writes the override file with the given content
func (env *TestEnvironment) WithOverride(content string) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.Root, FileTree{"path.txt": content})
}

// ModNames returns the sorted names of the top-level mods directory entries
func (env *TestEnvironment) ModNames() []string {
	env.t.Helper()
	return ListNames(env.t, env.FS, env.ModsDir)
}

// ListNames returns the sorted entry names of dir
func ListNames(t *testing.T, fsys types.FS, dir string) []string {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// CreateFileTree recursively creates a file tree
func CreateFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
