package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/arthur-debert/milton/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	merrors "github.com/arthur-debert/milton/pkg/errors"
)

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "MILTON_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is milton's runtime configuration.
type Config struct {
	HostPrefix string        `koanf:"host_prefix" toml:"host_prefix"`
	Target     string        `koanf:"target" toml:"target"`
	Restore    RestoreConfig `koanf:"restore" toml:"restore"`
	Trees      TreesConfig   `koanf:"trees" toml:"trees"`
}

// RestoreConfig holds restore defaults.
type RestoreConfig struct {
	Mask string `koanf:"mask" toml:"mask"`
}

// TreesConfig names the mirrored trees.
type TreesConfig struct {
	Data    string `koanf:"data" toml:"data"`
	Results string `koanf:"results" toml:"results"`
}

// Layout returns the tree layout described by the configuration.
func (c *Config) Layout() paths.Layout {
	return paths.Layout{Data: c.Trees.Data, Results: c.Trees.Results}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch {
	case c.Trees.Data == "" || c.Trees.Results == "":
		return merrors.New(merrors.ErrConfigValid, "trees.data and trees.results must be set")
	case c.Trees.Data == c.Trees.Results:
		return merrors.Newf(merrors.ErrConfigValid, "trees.data and trees.results must differ (both %q)", c.Trees.Data)
	case strings.ContainsRune(c.Trees.Data, os.PathSeparator) || strings.ContainsRune(c.Trees.Results, os.PathSeparator):
		return merrors.New(merrors.ErrConfigValid, "tree names must be single path segments")
	case c.Target == "":
		return merrors.New(merrors.ErrConfigValid, "target must be set")
	}
	return nil
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the layered configuration. An empty configFile selects the
// XDG location, which may be absent; an explicit configFile must exist.
// overrides holds dotted keys (for example "restore.mask") set on the
// command line and wins over every other layer.
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load user config
	path := configFile
	if path == "" {
		path = paths.ConfigFilePath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, merrors.Wrapf(err, merrors.ErrConfigValid, "failed to load config from %s", path)
		}
	} else if configFile != "" {
		return nil, merrors.Wrapf(err, merrors.ErrConfigValid, "config file %s", configFile)
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      false,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, merrors.Wrap(err, merrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults.
func Default() *Config {
	var cfg Config
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return &cfg
}

// DefaultPath returns where the user configuration file is looked up.
func DefaultPath() string {
	return paths.ConfigFilePath()
}
