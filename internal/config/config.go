// Package config loads mazepath settings with Viper.
//
// Sources, highest priority first:
//
//  1. Flags bound by the command line (--log-level, --log-format)
//  2. MAZEPATH_<SECTION>_<KEY> environment variables, e.g. MAZEPATH_LOG_LEVEL
//  3. A .env file in the working directory (never overrides the real environment)
//  4. The config file: --config, else MAZEPATH_CONFIG_FILE, else .mazepath.yaml
//  5. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mazepath/internal/logging"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MAZEPATH"
	// EnvConfigFile names the variable holding a config file path.
	EnvConfigFile = "MAZEPATH_CONFIG_FILE"
	// DefaultName is the config file looked up in the working directory.
	DefaultName = ".mazepath"

	// Keys.
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyPNGScale    = "render.png_scale"
	defaultScale   = 8
	maxPNGScale    = 256
	defaultDotEnv  = ".env"
	defaultLevel   = "info"
	defaultFormat  = logging.FormatText
	configFileType = "yaml"
)

var (
	// ErrInvalidConfig indicates a setting with an unusable value.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrReadConfig indicates a config or .env file that exists but cannot be read.
	ErrReadConfig = errors.New("config: cannot read configuration")
)

// Config holds the resolved settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// RenderConfig controls image output.
type RenderConfig struct {
	PNGScale int `mapstructure:"png_scale" yaml:"png_scale"`
}

// Sources names the files consulted by NewViper. Empty fields fall back to
// MAZEPATH_CONFIG_FILE / .mazepath.yaml and .env respectively.
type Sources struct {
	ConfigFile string
	DotEnv     string
}

// NewViper returns a Viper instance with defaults, environment binding and the
// config file already read. A missing default config file or .env is not an
// error; a missing explicit config file is.
func NewViper(src Sources) (*viper.Viper, error) {
	dotenv := src.DotEnv
	if dotenv == "" {
		dotenv = defaultDotEnv
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, dotenv, err)
	}

	v := viper.New()
	v.SetDefault(KeyLogLevel, defaultLevel)
	v.SetDefault(KeyLogFormat, defaultFormat)
	v.SetDefault(KeyPNGScale, defaultScale)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := src.ConfigFile
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType(configFileType)
		v.SetConfigName(DefaultName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
	}
	return v, nil
}

// Load decodes and checks the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyLogLevel, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, c.Log.Format)
	}
	if c.Render.PNGScale < 1 || c.Render.PNGScale > maxPNGScale {
		return fmt.Errorf("%w: %s must be in [1, %d], got %d", ErrInvalidConfig, KeyPNGScale, maxPNGScale, c.Render.PNGScale)
	}
	return nil
}
