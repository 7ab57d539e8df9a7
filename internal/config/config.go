// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers file and environment sources on top of the defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Seed drives every random draw in the engine. Runs with the same
	// seed over the same population reproduce exactly.
	Seed int64 `koanf:"seed"`

	// ChunkSize sets how many players one season chunk carries.
	ChunkSize int `koanf:"chunk_size"`

	// WorkerCount sets the number of season workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueCapacity bounds the in-memory chunk queue.
	QueueCapacity int `koanf:"queue_capacity"`

	// ProfileTTL bounds how long cached position profiles are served.
	ProfileTTL time.Duration `koanf:"profile_ttl"`

	// TeamCount and SquadSize shape the bootstrapped league.
	TeamCount int `koanf:"team_count"`
	SquadSize int `koanf:"squad_size"`

	// Seasons is how many season passes the simulation runs.
	Seasons int `koanf:"seasons"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		MetricsAddr:   ":9090",
		Seed:          40,
		ChunkSize:     100,
		WorkerCount:   runtime.NumCPU(),
		QueueCapacity: 256,
		ProfileTTL:    5 * time.Minute,
		TeamCount:     20,
		SquadSize:     23,
		Seasons:       10,
	}
}
