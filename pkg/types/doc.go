// Package types defines the core types and interfaces used throughout
// modhandler: the filesystem abstraction every component works against, the
// Profile discovered by the catalog and the ManagedDirectory handle used when
// deciding whether to clear the mods directory before a copy.
package types
