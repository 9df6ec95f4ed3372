package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/log"
	"github.com/dshills/quantaplan/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. QUANTAPLAN_LOG_LEVEL.
const EnvPrefix = "QUANTAPLAN"

// Config represents the complete quantaplan configuration.
type Config struct {
	// Logging configuration
	Log log.Config `mapstructure:"log"`

	// Storage configuration
	Storage StorageConfig `mapstructure:"storage"`

	// Shell configuration
	Shell ShellConfig `mapstructure:"shell"`
}

// StorageConfig represents storage-specific configuration.
type StorageConfig struct {
	Compression        string `mapstructure:"compression"`          // "none" or "lz4"
	CompressionMinSize int    `mapstructure:"compression_min_size"` // in bytes
}

// ShellConfig represents interactive shell configuration.
type ShellConfig struct {
	Prompt      string `mapstructure:"prompt"`
	HistoryFile string `mapstructure:"history_file"` // empty disables history
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	opts := storage.DefaultOptions()
	return &Config{
		Log: log.DefaultConfig(),
		Storage: StorageConfig{
			Compression:        opts.Compression.String(),
			CompressionMinSize: opts.CompressionMinSize,
		},
		Shell: ShellConfig{
			Prompt:      "quantaplan> ",
			HistoryFile: "",
		},
	}
}

// Load reads configuration from path, then applies environment overrides.
// An empty path yields the defaults plus environment overrides. The file
// format follows the extension (yaml, json or toml).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.ConfigError("read config %s: %v", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ConfigError("unmarshal config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("storage.compression", cfg.Storage.Compression)
	v.SetDefault("storage.compression_min_size", cfg.Storage.CompressionMinSize)
	v.SetDefault("shell.prompt", cfg.Shell.Prompt)
	v.SetDefault("shell.history_file", cfg.Shell.HistoryFile)
}

// LoadFromFlags overrides configuration with command-line flags.
func (c *Config) LoadFromFlags(logLevel string) {
	if logLevel != "" {
		c.Log.Level = logLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// Validate logging
	if !log.ValidLevel(c.Log.Level) {
		return errors.ConfigError("invalid log level: %s", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.ConfigError("invalid log format: %s", c.Log.Format)
	}

	// Validate storage
	if _, err := storage.ParseCompressionType(c.Storage.Compression); err != nil {
		return errors.ConfigError("invalid storage configuration: %v", err)
	}
	if c.Storage.CompressionMinSize < 0 {
		return errors.ConfigError("compression min size must not be negative")
	}

	return nil
}

// StorageOptions converts the storage section to table options.
func (c *Config) StorageOptions() (storage.Options, error) {
	compression, err := storage.ParseCompressionType(c.Storage.Compression)
	if err != nil {
		return storage.Options{}, errors.ConfigError("invalid storage configuration: %v", err)
	}
	return storage.Options{
		Compression:        compression,
		CompressionMinSize: c.Storage.CompressionMinSize,
	}, nil
}
