// Package filesystem provides filesystem implementations for modhandler.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and an afero-backed filesystem used
// by tests that want an in-memory tree.
package filesystem
