package testutil

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/jakkoble/modhandler/pkg/types"
)

// Op names a types.FS method for error injection
type Op string

const (
	OpStat      Op = "stat"
	OpReadDir   Op = "readdir"
	OpOpen      Op = "open"
	OpCreate    Op = "create"
	OpMkdir     Op = "mkdir"
	OpRemoveAll Op = "removeall"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS
	errorPaths map[Op]map[string]error
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base, errorPaths: make(map[Op]map[string]error)}
}

// FailOn makes op on path return err
func (f *FaultyFS) FailOn(op Op, path string, err error) *FaultyFS {
	if f.errorPaths[op] == nil {
		f.errorPaths[op] = make(map[string]error)
	}
	f.errorPaths[op][filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) fault(op Op, path string) error {
	return f.errorPaths[op][filepath.Clean(path)]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.fault(OpOpen, name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.fault(OpCreate, name); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.Mkdir(path, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.fault(OpRemoveAll, path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}
