// Package config handles configuration management for milton.
// It loads configuration from layered sources with koanf:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/milton/config.toml, when present
//  3. MILTON_* environment variables, with __ separating nested keys
//  4. command-line overrides passed to Load
package config
