package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakkoble/modhandler/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exercise runs the same checks against every implementation
func exercise(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.jar")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.jar", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	// Create truncates
	w, err := fsys.Create(testFile, 0644)
	require.NoError(t, err)
	_, err = w.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fsys.Open(testFile)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "new", string(data))

	require.NoError(t, fsys.Mkdir(filepath.Join(root, "single"), 0755))
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "sub", "dir"), 0755))

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	require.NoError(t, fsys.RemoveAll(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.RemoveAll(filepath.Join(root, "sub")))
	_, err = fsys.Stat(filepath.Join(root, "sub"))
	assert.True(t, os.IsNotExist(err))

	_, err = fsys.ReadFile(filepath.Join(root, "single"))
	assert.Error(t, err)
}

func TestNewOS(t *testing.T) {
	exercise(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	fsys := NewMemory()
	root := filepath.Join(string(filepath.Separator), "mem")
	require.NoError(t, fsys.MkdirAll(root, 0755))
	exercise(t, fsys, root)
}
