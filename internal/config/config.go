// Package config loads perftable CLI settings from defaults, an optional
// YAML file, PERFTABLE_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared by the loader and the CLI flag bindings.
const (
	KeyEnv          = "env"
	KeyLogLevel     = "log.level"
	KeyInputFormat  = "input.format"
	KeyOutputFormat = "output.format"
	KeyWorkers      = "workers"
)

// EnvPrefix is prepended to every environment override, e.g. PERFTABLE_LOG_LEVEL.
const EnvPrefix = "PERFTABLE"

var (
	// ErrInvalidFormat is returned for an unsupported input or output format.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrInvalidWorkers is returned when workers < 0.
	ErrInvalidWorkers = errors.New("config: workers must be >= 0")
)

// Config is the resolved CLI configuration.
type Config struct {
	Env          string // "production" selects JSON logs
	LogLevel     string
	InputFormat  string // json | yaml (yml is normalised to yaml)
	OutputFormat string // csv | json
	Workers      int    // 0 means GOMAXPROCS
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyInputFormat, "yaml")
	v.SetDefault(KeyOutputFormat, "csv")
	v.SetDefault(KeyWorkers, 0)
}

// New returns a viper instance with defaults and environment overrides wired.
// If cfgFile is empty, perftable.yaml is searched in ., ./config and $HOME;
// a missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}

		return v, nil
	}

	v.SetConfigName("perftable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME")

	err := v.ReadInConfig()
	notFound := viper.ConfigFileNotFoundError{}
	if err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("config: %w", err)
	}

	return v, nil
}

// FromViper resolves a Config and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:          v.GetString(KeyEnv),
		LogLevel:     v.GetString(KeyLogLevel),
		InputFormat:  normaliseFormat(v.GetString(KeyInputFormat)),
		OutputFormat: normaliseFormat(v.GetString(KeyOutputFormat)),
		Workers:      v.GetInt(KeyWorkers),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normaliseFormat lower-cases a format name and folds yml into yaml.
func normaliseFormat(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		return "yaml"
	}

	return s
}

// Validate rejects unknown formats and negative worker counts.
// Workers == 0 selects GOMAXPROCS.
func (c *Config) Validate() error {
	switch c.InputFormat {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: input %q", ErrInvalidFormat, c.InputFormat)
	}
	switch c.OutputFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidFormat, c.OutputFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}

	return nil
}
