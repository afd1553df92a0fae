package types

import (
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string { return e.name }
func (e fakeEntry) IsDir() bool  { return e.dir }
func (e fakeEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e fakeEntry) Info() (fs.FileInfo, error) { return fakeInfo{e}, nil }

type fakeInfo struct{ e fakeEntry }

func (i fakeInfo) Name() string       { return i.e.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.e.Type() }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.e.dir }
func (i fakeInfo) Sys() any           { return nil }

func TestManagedDirectory(t *testing.T) {
	tests := []struct {
		name      string
		entries   []fs.DirEntry
		wantCount int
		wantEmpty bool
		wantNames []string
	}{
		{
			name:      "empty",
			entries:   nil,
			wantCount: 0,
			wantEmpty: true,
			wantNames: []string{},
		},
		{
			name: "files and directories",
			entries: []fs.DirEntry{
				fakeEntry{name: "sodium.jar"},
				fakeEntry{name: "config", dir: true},
				fakeEntry{name: "lithium.jar"},
			},
			wantCount: 3,
			wantEmpty: false,
			wantNames: []string{"sodium.jar", "config", "lithium.jar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := ManagedDirectory{Path: "/mods", Entries: tt.entries}
			assert.Equal(t, tt.wantCount, dir.Count())
			assert.Equal(t, tt.wantEmpty, dir.IsEmpty())
			assert.Equal(t, tt.wantNames, dir.Names())
		})
	}
}

func TestProfile(t *testing.T) {
	p := Profile{
		Name:     "survival",
		Path:     filepath.Join("profiles", "survival"),
		Mods:     2,
		ModFiles: []string{filepath.Join("profiles", "survival", "a.jar"), filepath.Join("profiles", "survival", "b.jar")},
	}

	assert.Equal(t, []string{"a.jar", "b.jar"}, p.ModNames())
}
