package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	rterrors "github.com/arthur-debert/richtext/pkg/errors"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "RICHTEXT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration. An empty path looks for the user file in
// the XDG config directory and skips it when absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, used for
// command line flags.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rterrors.Wrap(err, rterrors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User file
	userPath, required := path, true
	if userPath == "" {
		userPath, required = DefaultPath(), false
	}
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, rterrors.Wrapf(err, rterrors.ErrConfigParse, "failed to parse config file %s", userPath).
				WithDetail("path", userPath)
		}
	} else if required {
		return nil, rterrors.Wrapf(err, rterrors.ErrConfigLoad, "config file %s not found", userPath).
			WithDetail("path", userPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, rterrors.Wrap(err, rterrors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, rterrors.Wrap(err, rterrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

// Default returns the embedded defaults alone.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rterrors.Wrap(err, rterrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath is the user configuration file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "richtext", "config.toml")
}

// envKey maps RICHTEXT_RENDER_MAX_DEPTH to render.max_depth: the first
// underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	checks := []struct {
		key   string
		value int
	}{
		{"render.max_depth", c.Render.MaxDepth},
		{"xml.indent", c.XML.Indent},
		{"terminal.width", c.Terminal.Width},
		{"logging.verbosity", c.Logging.Verbosity},
	}
	for _, check := range checks {
		if check.value < 0 {
			return rterrors.Newf(rterrors.ErrConfigValid, "%s must not be negative", check.key).
				WithDetail("key", check.key).
				WithDetail("value", check.value)
		}
	}
	if c.Render.KeyPrefix == "" {
		return rterrors.New(rterrors.ErrConfigValid, "render.key_prefix must not be empty").
			WithDetail("key", "render.key_prefix")
	}
	return nil
}
