package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360/streamkit/errors"
)

// Config is the streampipe YAML configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PipelineConfig tunes the stdin→stream→stdout pipeline.
type PipelineConfig struct {
	Capacity     int           `yaml:"capacity"`
	AsyncTimeout time.Duration `yaml:"async_timeout"`
	PollCadence  time.Duration `yaml:"poll_cadence"`
	Workers      int           `yaml:"workers"`
	QueueSize    int           `yaml:"queue_size"`
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Capacity:     256,
			AsyncTimeout: 2 * time.Second,
			PollCadence:  10 * time.Millisecond,
			Workers:      1,
			QueueSize:    256,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "streampipe", "LoadConfig", "config file read")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "streampipe", "LoadConfig", "yaml parsing")
	}
	return cfg, nil
}

// Validate rejects impossible settings before anything starts.
func (c *Config) Validate() error {
	if c.Pipeline.Capacity <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("pipeline capacity %d: %w", c.Pipeline.Capacity, errors.ErrInvalidConfig),
			"streampipe", "Validate", "capacity check")
	}
	if c.Pipeline.AsyncTimeout <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("async timeout %s: %w", c.Pipeline.AsyncTimeout, errors.ErrInvalidConfig),
			"streampipe", "Validate", "timeout check")
	}
	if c.Pipeline.PollCadence <= 0 || c.Pipeline.PollCadence > c.Pipeline.AsyncTimeout {
		return errors.WrapInvalid(
			fmt.Errorf("poll cadence %s: %w", c.Pipeline.PollCadence, errors.ErrInvalidConfig),
			"streampipe", "Validate", "cadence check")
	}
	if c.Pipeline.Workers < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("workers %d: %w", c.Pipeline.Workers, errors.ErrInvalidConfig),
			"streampipe", "Validate", "workers check")
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("metrics port %d: %w", c.Metrics.Port, errors.ErrInvalidConfig),
			"streampipe", "Validate", "port check")
	}
	return nil
}
