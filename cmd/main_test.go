package main

import (
	"context"
	"os"
	"testing"

	app "github.com/pitchside/careersim/internal/app"
	"github.com/pitchside/careersim/internal/config"
	"github.com/pitchside/careersim/pkg/logger"
	"github.com/pitchside/careersim/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("CAREERSIM_METRICS_ADDR", ":8080")
			_ = os.Setenv("CAREERSIM_CHUNK_SIZE", "50")
			_ = os.Setenv("CAREERSIM_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("CAREERSIM_METRICS_ADDR")
				_ = os.Unsetenv("CAREERSIM_CHUNK_SIZE")
				_ = os.Unsetenv("CAREERSIM_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ChunkSize, convey.ShouldEqual, 50)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When building the engine from config", func() {
			cfg := config.New()
			svc := app.New(
				app.WithSeed(cfg.Seed),
				app.WithChunkSize(cfg.ChunkSize),
				app.WithWorkerCount(cfg.WorkerCount),
				app.WithQueueCapacity(cfg.QueueCapacity),
			)

			convey.Convey("Then the engine should be created", func() {
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When updating system metrics", func() {
			updateSystemMetrics()

			convey.Convey("Then the registry should serve them", func() {
				families, err := metrics.GetRegistry().Gather()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(families), convey.ShouldBeGreaterThan, 0)
			})
		})
	})
}
