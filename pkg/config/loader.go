package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jakkoble/modhandler/pkg/errors"
	"github.com/jakkoble/modhandler/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Root is the directory searched for modhandler.toml. Empty skips the file.
	Root string

	// Overrides are applied last, keyed by dotted path (e.g. "ui.pause_on_exit")
	Overrides map[string]interface{}

	// SkipEnv disables MODHANDLER_ environment overrides
	SkipEnv bool
}

// Load layers defaults, the root config file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Root config if it exists
	if opts.Root != "" {
		rootConfigPath := filepath.Join(opts.Root, FileName)
		if _, err := os.Stat(rootConfigPath); err == nil {
			if err := k.Load(file.Provider(rootConfigPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", rootConfigPath).
					WithDetail("path", rootConfigPath)
			}
			logger.Debug().Str("path", rootConfigPath).Msg("Loaded root config")
		}
	}

	// 3. Env vars
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults without consulting files or env
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary; failing to parse them is a build bug.
		panic(err)
	}
	return cfg
}

// envKey maps MODHANDLER_PROFILES__EXTENSION to profiles.extension
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func postProcessConfig(cfg *Config) error {
	cfg.Paths.OverrideFile = strings.TrimSpace(cfg.Paths.OverrideFile)
	cfg.Paths.ProfilesDir = strings.TrimSpace(cfg.Paths.ProfilesDir)
	cfg.Paths.AppDataEnv = strings.TrimSpace(cfg.Paths.AppDataEnv)

	required := map[string]string{
		"paths.override_file":   cfg.Paths.OverrideFile,
		"paths.profiles_dir":    cfg.Paths.ProfilesDir,
		"paths.appdata_env":     cfg.Paths.AppDataEnv,
		"paths.default_subpath": cfg.Paths.DefaultSubpath,
		"profiles.extension":    cfg.Profiles.Extension,
	}
	for key, value := range required {
		if value == "" {
			return errors.Newf(errors.ErrConfigParse, "configuration key %s must not be empty", key).
				WithDetail("key", key)
		}
	}

	ext := strings.ToLower(strings.TrimSpace(cfg.Profiles.Extension))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	cfg.Profiles.Extension = ext

	return nil
}
