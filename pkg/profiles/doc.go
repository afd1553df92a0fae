// Package profiles builds the profile catalog.
//
// A profile is an immediate subdirectory of the profiles directory. Its mod
// files are the regular files directly inside it whose name ends in the
// configured extension, compared case-insensitively. Nested directories are
// copied along with the profile but do not count as mods.
package profiles
