package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/storage"
	"github.com/dshills/quantaplan/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.StorageOptions()
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultOptions(), opts)
	assert.Equal(t, "quantaplan> ", cfg.Shell.Prompt)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := testutil.WriteFile(t, "quantaplan.yaml", `
log:
  level: debug
  format: json
storage:
  compression: none
shell:
  prompt: "qp> "
  history_file: /tmp/qp_history
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "qp> ", cfg.Shell.Prompt)
	assert.Equal(t, "/tmp/qp_history", cfg.Shell.HistoryFile)

	opts, err := cfg.StorageOptions()
	require.NoError(t, err)
	assert.Equal(t, storage.CompressionNone, opts.Compression)
	assert.Equal(t, 64, opts.CompressionMinSize, "unset keys keep their defaults")
}

func TestLoadJSON(t *testing.T) {
	path := testutil.WriteFile(t, "quantaplan.json", `{"storage": {"compression_min_size": 128}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Storage.CompressionMinSize)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QUANTAPLAN_LOG_LEVEL", "error")
	t.Setenv("QUANTAPLAN_STORAGE_COMPRESSION", "none")

	path := testutil.WriteFile(t, "quantaplan.yaml", "log:\n  level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Storage.Compression)
}

func TestEnvCompressionIsCaseInsensitive(t *testing.T) {
	t.Setenv("QUANTAPLAN_STORAGE_COMPRESSION", "LZ4")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.StorageOptions()
	require.NoError(t, err)
	assert.Equal(t, storage.CompressionLZ4, opts.Compression)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	testutil.AssertSQLState(t, err, errors.ConfigFileError)

	path := testutil.WriteFile(t, "bad.yaml", "storage:\n  compression: zstd\n")
	_, err = Load(path)
	testutil.AssertSQLState(t, err, errors.ConfigFileError)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "trace" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"compression", func(c *Config) { c.Storage.Compression = "snappy" }},
		{"min size", func(c *Config) { c.Storage.CompressionMinSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.True(t, errors.IsError(cfg.Validate(), errors.ConfigFileError))
		})
	}
}

func TestLoadFromFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoadFromFlags("")
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg.LoadFromFlags("debug")
	assert.Equal(t, "debug", cfg.Log.Level)
}
