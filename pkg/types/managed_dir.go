package types

import (
	"io/fs"
)

// ManagedDirectory pairs a resolved directory path with the listing read when
// it was opened. The listing is a snapshot; it is not refreshed after a clear
// or copy.
type ManagedDirectory struct {
	Path    string
	Entries []fs.DirEntry
}

// Count returns the number of entries in the snapshot
func (d ManagedDirectory) Count() int {
	return len(d.Entries)
}

// IsEmpty reports whether the directory had no entries when opened
func (d ManagedDirectory) IsEmpty() bool {
	return len(d.Entries) == 0
}

// Names returns the entry names in the snapshot
func (d ManagedDirectory) Names() []string {
	names := make([]string, len(d.Entries))
	for i, entry := range d.Entries {
		names[i] = entry.Name()
	}
	return names
}
