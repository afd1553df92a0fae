package config

import (
	_ "embed"
	"errors"
)

// FileName is the optional per-root configuration file
const FileName = "modhandler.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "MODHANDLER_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the complete modhandler configuration
type Config struct {
	Paths    Paths    `koanf:"paths" toml:"paths"`
	Profiles Profiles `koanf:"profiles" toml:"profiles"`
	UI       UI       `koanf:"ui" toml:"ui"`
}

// Paths holds the names used to locate the override file, the profiles and
// the default mods directory
type Paths struct {
	OverrideFile   string `koanf:"override_file" toml:"override_file"`
	ProfilesDir    string `koanf:"profiles_dir" toml:"profiles_dir"`
	AppDataEnv     string `koanf:"appdata_env" toml:"appdata_env"`
	DefaultSubpath string `koanf:"default_subpath" toml:"default_subpath"`
}

// Profiles holds catalog settings
type Profiles struct {
	Extension string `koanf:"extension" toml:"extension"`
}

// UI holds interactive session settings
type UI struct {
	PauseOnExit bool `koanf:"pause_on_exit" toml:"pause_on_exit"`
	Banner      bool `koanf:"banner" toml:"banner"`
}

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
