// Package config handles configuration management for modhandler.
// It layers embedded defaults, an optional modhandler.toml in the root
// directory, MODHANDLER_ environment variables and command-line flags into a
// single immutable Config loaded once at startup.
package config
