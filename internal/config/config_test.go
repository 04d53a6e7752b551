package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/leafperf/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "yaml", cfg.InputFormat)
	require.Equal(t, "csv", cfg.OutputFormat)
	require.Zero(t, cfg.Workers)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perftable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: JSON\nworkers: 3\n"), 0o600))

	t.Setenv("PERFTABLE_LOG_LEVEL", "debug")

	v, err := config.New(path)
	require.NoError(t, err)
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.OutputFormat) // lower-cased
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Config{InputFormat: "xml", OutputFormat: "csv"}
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidFormat)

	cfg = config.Config{InputFormat: "json", OutputFormat: "parquet"}
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidFormat)

	cfg = config.Config{InputFormat: "json", OutputFormat: "json", Workers: -1}
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidWorkers)

	cfg = config.Config{InputFormat: "yaml", OutputFormat: "csv", Workers: 8}
	require.NoError(t, cfg.Validate())
}

func TestYMLInputFormat(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set(config.KeyInputFormat, "YML")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.InputFormat)

	raw := config.Config{InputFormat: "yml", OutputFormat: "csv"}
	require.NoError(t, raw.Validate())
}
