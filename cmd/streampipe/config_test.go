package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 256, cfg.Pipeline.Capacity)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streampipe.yaml")
	content := `
pipeline:
  capacity: 32
  async_timeout: 500ms
  poll_cadence: 5ms
  workers: 4
metrics:
  enabled: true
  port: 9191
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 32, cfg.Pipeline.Capacity)
	assert.Equal(t, 500*time.Millisecond, cfg.Pipeline.AsyncTimeout)
	assert.Equal(t, 5*time.Millisecond, cfg.Pipeline.PollCadence)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9191, cfg.Metrics.Port)
	// Unset fields keep their defaults.
	assert.Equal(t, 256, cfg.Pipeline.QueueSize)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline: ["), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Pipeline.Capacity = 0 }},
		{"zero timeout", func(c *Config) { c.Pipeline.AsyncTimeout = 0 }},
		{"cadence above timeout", func(c *Config) { c.Pipeline.PollCadence = time.Minute }},
		{"negative workers", func(c *Config) { c.Pipeline.Workers = -1 }},
		{"bad port", func(c *Config) { c.Metrics.Port = 70000 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}
