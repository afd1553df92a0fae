package syncdir

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/types"
)

// SyncEntry is one step of a walk: a source path and where it goes.
type SyncEntry struct {
	Source      string
	Destination string
	IsDir       bool
	Size        int64
	Mode        fs.FileMode
}

type dirPair struct {
	src string
	dst string
}

// Walk returns a lazy sequence of (source, destination) pairs mirroring src
// under dst. Each directory is yielded before its children, the root first.
//
// Errors are yielded instead of ending the walk, so the caller picks the
// policy: stop ranging to abort, keep ranging to skip the failing entry. A
// directory that cannot be read contributes no children.
//
// Entries are classified with Stat, so symlinks are followed. There is no
// cycle detection.
func Walk(fsys types.FS, src, dst string) iter.Seq2[SyncEntry, error] {
	return func(yield func(SyncEntry, error) bool) {
		root := SyncEntry{Source: src, Destination: dst, IsDir: true}

		info, err := fsys.Stat(src)
		if err != nil {
			code := errors.ErrFileAccess
			if os.IsNotExist(err) {
				code = errors.ErrFileNotFound
			}
			yield(root, errors.Wrap(err, code, "Source directory does not exist.").
				WithDetail("path", src))
			return
		}
		if !info.IsDir() {
			yield(root, errors.New(errors.ErrFileAccess, "Source is not a directory.").
				WithDetail("path", src))
			return
		}
		root.Mode = info.Mode()
		if !yield(root, nil) {
			return
		}

		stack := []dirPair{{src: src, dst: dst}}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := fsys.ReadDir(current.src)
			if err != nil {
				failed := SyncEntry{Source: current.src, Destination: current.dst, IsDir: true}
				if !yield(failed, errors.Wrap(err, errors.ErrFileAccess, "Failed reading directory.").
					WithDetail("path", current.src)) {
					return
				}
				continue
			}

			var subdirs []dirPair
			for _, entry := range entries {
				childSrc := filepath.Join(current.src, entry.Name())
				childDst := filepath.Join(current.dst, entry.Name())

				info, err := fsys.Stat(childSrc)
				if err != nil {
					failed := SyncEntry{Source: childSrc, Destination: childDst}
					if !yield(failed, errors.Wrap(err, errors.ErrFileAccess, "Failed reading directory entry.").
						WithDetail("path", childSrc)) {
						return
					}
					continue
				}

				step := SyncEntry{
					Source:      childSrc,
					Destination: childDst,
					IsDir:       info.IsDir(),
					Size:        info.Size(),
					Mode:        info.Mode(),
				}
				if step.IsDir {
					step.Size = 0
					subdirs = append(subdirs, dirPair{src: childSrc, dst: childDst})
				}
				if !yield(step, nil) {
					return
				}
			}

			// Push in reverse so subdirectories are visited in enumeration order
			for i := len(subdirs) - 1; i >= 0; i-- {
				stack = append(stack, subdirs[i])
			}
		}
	}
}
