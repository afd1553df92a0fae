// Package testutil provides utilities for testing modhandler components.
//
// Key components:
//   - TestEnvironment: a root directory with profiles and a mods directory,
//     either in memory (afero) or isolated under t.TempDir()
//   - FileTree: declarative directory layout for fixtures
//   - FaultyFS: a types.FS wrapper that injects errors per path and operation
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated when behavior depends on the real OS filesystem
//   - Define test data inline, not in external files
package testutil
