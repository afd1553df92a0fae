package core

import (
	"errors"
	"path/filepath"
	"testing"

	moderrors "github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/profiles"
	"github.com/jakkoble/modhandler/pkg/testutil"
	"github.com/jakkoble/modhandler/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOne(t *testing.T, env *testutil.TestEnvironment, name string) types.Profile {
	t.Helper()
	catalog, err := profiles.Scan(env.FS, env.ProfilesDir, ".jar")
	require.NoError(t, err)
	p, err := profiles.Find(catalog, name)
	require.NoError(t, err)
	return p
}

func TestOpenModsDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithMods(testutil.FileTree{"a.jar": "a", "b.jar": "b"})

	dir, err := OpenModsDir(env.FS, env.ModsDir)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Count())
	assert.False(t, dir.IsEmpty())
}

func TestOpenModsDir_CreatesSingleLevel(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	t.Run("missing_leaf_is_created", func(t *testing.T) {
		path := filepath.Join(env.Root, "mods")
		dir, err := OpenModsDir(env.FS, path)
		require.NoError(t, err)
		assert.True(t, dir.IsEmpty())

		info, err := env.FS.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("missing_parent_fails_with_hint", func(t *testing.T) {
		fsys := testutil.NewFaultyFS(env.FS).
			FailOn(testutil.OpMkdir, "/no/minecraft/mods", errors.New("no such file or directory"))
		_, err := OpenModsDir(fsys, "/no/minecraft/mods")
		require.Error(t, err)
		assert.True(t, moderrors.IsErrorCode(err, moderrors.ErrDirCreate))
		assert.Contains(t, moderrors.UserMessage(err), "Have you installed Minecraft?")
	})
}

func TestApplyProfile(t *testing.T) {
	tests := []struct {
		name      string
		clear     bool
		dryRun    bool
		wantNames []string
	}{
		{name: "keep_existing", wantNames: []string{"fabric-api.jar", "old.jar", "sodium.jar"}},
		{name: "clear_first", clear: true, wantNames: []string{"fabric-api.jar", "sodium.jar"}},
		{name: "dry_run_touches_nothing", clear: true, dryRun: true, wantNames: []string{"old.jar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			env.WithProfile("Fabric", testutil.FileTree{"sodium.jar": "s", "fabric-api.jar": "f"})
			env.WithMods(testutil.FileTree{"old.jar": "o"})

			result, err := ApplyProfile(ApplyOptions{
				Profile:    scanOne(t, env, "Fabric"),
				ModsDir:    env.ModsDir,
				Clear:      tt.clear,
				DryRun:     tt.dryRun,
				FileSystem: env.FS,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, env.ModNames())
			assert.Equal(t, 2, result.Copied.Files)
			if tt.clear {
				require.NotNil(t, result.Cleared)
				assert.Equal(t, 1, result.Cleared.Files)
			} else {
				assert.Nil(t, result.Cleared)
			}
		})
	}
}

func TestApplyProfile_NoProfile(t *testing.T) {
	_, err := ApplyProfile(ApplyOptions{ModsDir: "/mods"})
	require.Error(t, err)
	assert.True(t, moderrors.IsErrorCode(err, moderrors.ErrInvalidInput))
}

func TestClearMods(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithMods(testutil.FileTree{"a.jar": "a", "b.jar": "b", "c.jar": "c"})

	result, err := ClearMods(ClearOptions{ModsDir: env.ModsDir, FileSystem: env.FS})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Files)
	assert.Empty(t, env.ModNames())
}
