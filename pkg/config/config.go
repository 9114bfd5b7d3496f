package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables that override configuration
	EnvPrefix = "HOOKS_"
	// FileName is the user configuration file name
	FileName = "config.toml"
)

// Config is the complete hookctl configuration
type Config struct {
	Logging  Logging  `koanf:"logging" json:"logging" yaml:"logging" toml:"logging"`
	Output   Output   `koanf:"output" json:"output" yaml:"output" toml:"output"`
	Greeting Greeting `koanf:"greeting" json:"greeting" yaml:"greeting" toml:"greeting"`
}

// Logging configures the zerolog setup
type Logging struct {
	Level string `koanf:"level" json:"level" yaml:"level" toml:"level" validate:"required,oneof=trace debug info warn error"`
}

// Output configures how commands render their results
type Output struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format" validate:"required,oneof=table yaml json toml"`
	Color  string `koanf:"color" json:"color" yaml:"color" toml:"color" validate:"required,oneof=auto always never"`
	// Width limits rendered markdown; 0 means the terminal width
	Width int `koanf:"width" json:"width" yaml:"width" toml:"width" validate:"gte=0"`
}

// Greeting configures the greet command
type Greeting struct {
	Name string `koanf:"name" json:"name" yaml:"name" toml:"name" validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// DefaultPath returns the user configuration file location.
// It respects XDG_CONFIG_HOME if set, otherwise uses the platform config home.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, logging.AppDirName, FileName)
}

// Load builds the configuration. An empty path means DefaultPath, which is
// optional; an explicit path must exist.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Env vars: HOOKS_OUTPUT_FORMAT -> output.format
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(err, errors.ErrConfigInvalid, "invalid configuration")
	}

	fe := verrs[0]
	key := configKey(fe.Namespace())
	return errors.Newf(errors.ErrConfigInvalid, "invalid value %v for %s (%s %s)", fe.Value(), key, fe.Tag(), fe.Param()).
		WithDetail("key", key).
		WithDetail("rule", fe.Tag())
}

// configKey turns "Config.Output.Format" into "output.format"
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
