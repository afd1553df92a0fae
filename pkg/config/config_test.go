package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakkoble/modhandler/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads_embedded_defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{SkipEnv: true})
		require.NoError(t, err)

		assert.Equal(t, "path.txt", cfg.Paths.OverrideFile)
		assert.Equal(t, "profiles", cfg.Paths.ProfilesDir)
		assert.Equal(t, "APPDATA", cfg.Paths.AppDataEnv)
		assert.Equal(t, ".minecraft/mods", cfg.Paths.DefaultSubpath)
		assert.Equal(t, ".jar", cfg.Profiles.Extension)
		assert.True(t, cfg.UI.PauseOnExit)
		assert.True(t, cfg.UI.Banner)
	})

	t.Run("loads_root_config", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`
[paths]
profiles_dir = "sets"

[profiles]
extension = "ZIP"
`), 0644)
		require.NoError(t, err)

		cfg, err := Load(LoadOptions{Root: tmpDir, SkipEnv: true})
		require.NoError(t, err)

		assert.Equal(t, "sets", cfg.Paths.ProfilesDir)
		assert.Equal(t, ".zip", cfg.Profiles.Extension, "extension is lowercased and dotted")
		assert.Equal(t, "path.txt", cfg.Paths.OverrideFile, "untouched keys keep defaults")
	})

	t.Run("env_overrides_root_config", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`
[ui]
pause_on_exit = true
`), 0644)
		require.NoError(t, err)

		t.Setenv("MODHANDLER_UI__PAUSE_ON_EXIT", "false")
		t.Setenv("MODHANDLER_PATHS__APPDATA_ENV", "MC_HOME")

		cfg, err := Load(LoadOptions{Root: tmpDir})
		require.NoError(t, err)

		assert.False(t, cfg.UI.PauseOnExit)
		assert.Equal(t, "MC_HOME", cfg.Paths.AppDataEnv)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("MODHANDLER_UI__BANNER", "true")

		cfg, err := Load(LoadOptions{
			Overrides: map[string]interface{}{"ui.banner": false},
		})
		require.NoError(t, err)
		assert.False(t, cfg.UI.Banner)
	})

	t.Run("invalid_toml_is_config_error", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("[paths\nbroken"), 0644)
		require.NoError(t, err)

		_, err = Load(LoadOptions{Root: tmpDir, SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, errors.KindConfiguration, errors.KindOf(err))
	})

	t.Run("empty_required_key_is_rejected", func(t *testing.T) {
		_, err := Load(LoadOptions{
			SkipEnv:   true,
			Overrides: map[string]interface{}{"paths.profiles_dir": "  "},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, "paths.profiles_dir", errors.GetErrorDetails(err)["key"])
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MODHANDLER_PROFILES__EXTENSION", "profiles.extension"},
		{"MODHANDLER_PATHS__OVERRIDE_FILE", "paths.override_file"},
		{"MODHANDLER_ROOT", "root"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("MODHANDLER_PROFILES__EXTENSION", ".zip")
	cfg := Default()
	assert.Equal(t, ".jar", cfg.Profiles.Extension, "Default ignores the environment")
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	data, err := Marshal(cfg)
	require.NoError(t, err)

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
	assert.Contains(t, string(data), "override_file")
	assert.Contains(t, string(data), "path.txt")
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line should be commented: %q", line)
	}
	assert.Contains(t, content, "[paths]")
	assert.Contains(t, content, `# override_file = "path.txt"`)
}
