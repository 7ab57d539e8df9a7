package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pitchside/careersim/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 100)
				convey.So(cfg.Seed, convey.ShouldEqual, 40)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAREERSIM_METRICS_ADDR", ":8080")
			_ = os.Setenv("CAREERSIM_SEED", "1234")
			_ = os.Setenv("CAREERSIM_CHUNK_SIZE", "50")
			_ = os.Setenv("CAREERSIM_WORKER_COUNT", "16")
			_ = os.Setenv("CAREERSIM_QUEUE_CAPACITY", "512")
			_ = os.Setenv("CAREERSIM_SEASONS", "3")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Seed, convey.ShouldEqual, 1234)
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 50)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 16)
				convey.So(cfg.QueueCapacity, convey.ShouldEqual, 512)
				convey.So(cfg.Seasons, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
metrics_addr: ":7070"
seed: 99
chunk_size: 25
worker_count: 8
team_count: 10
squad_size: 18
profile_ttl: 30s
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAREERSIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Seed, convey.ShouldEqual, 99)
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 25)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 8)
				convey.So(cfg.TeamCount, convey.ShouldEqual, 10)
				convey.So(cfg.SquadSize, convey.ShouldEqual, 18)
				convey.So(cfg.ProfileTTL, convey.ShouldEqual, 30*time.Second)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
metrics_addr: ":7070"
chunk_size: 25
worker_count: 8
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAREERSIM_CONFIG", tmpFile)
			_ = os.Setenv("CAREERSIM_METRICS_ADDR", ":8080") // This should override the file
			_ = os.Setenv("CAREERSIM_WORKER_COUNT", "32")    // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":8080") // Overridden by env
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 25)        // From file
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 32)      // Overridden by env
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAREERSIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("CAREERSIM_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty metrics addr", func() {
			_ = os.Setenv("CAREERSIM_METRICS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "metrics_addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive chunk size", func() {
			_ = os.Setenv("CAREERSIM_CHUNK_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "chunk_size must be positive")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative worker count", func() {
			_ = os.Setenv("CAREERSIM_WORKER_COUNT", "-4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "worker_count must be positive")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("CAREERSIM_CHUNK_SIZE", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
metrics_addr: ":7070"
worker_count: 16
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CAREERSIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":7070") // From file
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 16)      // From file
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 100)       // From defaults
				convey.So(cfg.QueueCapacity, convey.ShouldEqual, 256)   // From defaults
				convey.So(cfg.Seasons, convey.ShouldEqual, 10)          // From defaults
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CAREERSIM_CONFIG",
		"CAREERSIM_METRICS_ADDR",
		"CAREERSIM_SEED",
		"CAREERSIM_CHUNK_SIZE",
		"CAREERSIM_WORKER_COUNT",
		"CAREERSIM_QUEUE_CAPACITY",
		"CAREERSIM_SEASONS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "careersim-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
