package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		env := NewTestEnvironment(t, envType)

		env.WithProfile("Fabric", FileTree{"a.jar": "a", "lib": FileTree{"b.jar": "b"}})
		env.WithMods(FileTree{"old.jar": "old"})
		env.WithOverride("/games/minecraft\n")

		assert.Equal(t, []string{"Fabric"}, ListNames(t, env.FS, env.ProfilesDir))
		assert.Equal(t, []string{"old.jar"}, env.ModNames())

		data, err := env.FS.ReadFile(env.Root + "/path.txt")
		require.NoError(t, err)
		assert.Equal(t, "/games/minecraft\n", string(data))
	}
}

func TestFaultyFS(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	env.WithMods(FileTree{"a.jar": "a"})

	boom := errors.New("boom")
	fsys := NewFaultyFS(env.FS).FailOn(OpReadDir, env.ModsDir, boom)

	_, err := fsys.ReadDir(env.ModsDir)
	assert.ErrorIs(t, err, boom)

	_, err = fsys.Stat(env.ModsDir + "/a.jar")
	assert.NoError(t, err)
}
