// Package leaguesim bootstraps a synthetic league and drives it through
// repeated seasons of the career engine: retirement checks, replacement
// generation, skill development and repricing for every player.
package leaguesim

import (
	"context"
	"fmt"
	"time"

	service "github.com/pitchside/careersim/internal/app"
	"github.com/pitchside/careersim/pkg/logger"
)

// Run executes the complete league simulation.
func Run(ctx context.Context, svc *service.Service, cfg *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	log := logger.Get().Named("leaguesim")
	log.Info(ctx, "starting league simulation",
		logger.Int("teams", cfg.Teams),
		logger.Int("squad_size", cfg.SquadSize),
		logger.Int("seasons", cfg.Seasons),
		logger.Int("seed", int(cfg.Seed)))

	// Step 1: Bootstrap the league population.
	created, err := bootstrap(ctx, svc, cfg)
	if err != nil {
		return fmt.Errorf("league bootstrap failed: %w", err)
	}
	stats.PlayersCreated = created
	log.Info(ctx, "league bootstrapped", logger.Int("players", created))

	// Step 2: Run the seasons.
	for season := 1; season <= cfg.Seasons; season++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation cancelled at season %d: %w", season, err)
		}

		ageSeason(ctx, svc, log)

		svc.ResetSeason(ctx)
		report, err := svc.RunSeason(ctx)
		if err != nil {
			return fmt.Errorf("season %d failed: %w", season, err)
		}

		stats.SeasonsRun++
		stats.Processed += report.Processed
		stats.Developed += report.Developed
		stats.Retired += report.Retired
		stats.Regens += report.Regens

		if cfg.Verbose {
			log.Info(ctx, "season complete",
				logger.Int("season", season),
				logger.Int("processed", report.Processed),
				logger.Int("retired", report.Retired),
				logger.Int("regens", report.Regens))
		}
	}

	// Step 3: Final statistics.
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, svc, stats, log)

	log.Info(ctx, "simulation completed successfully")
	return nil
}

// ageSeason advances every player's age by one year before the season
// pass runs. The engine itself never mutates age.
func ageSeason(ctx context.Context, svc *service.Service, log logger.Logger) {
	players := svc.Store().Players(ctx, false)
	for _, p := range players {
		p.Age++
	}
	if err := svc.Store().CommitChunk(ctx, players, nil); err != nil {
		log.Warn(ctx, "failed to commit aged players", logger.Error(err))
	}
}

// displayFinalStats logs the cumulative run statistics and a population
// summary.
func displayFinalStats(ctx context.Context, svc *service.Service, stats *Stats, log logger.Logger) {
	var seasonsPerSecond float64
	if stats.Duration > 0 {
		seasonsPerSecond = float64(stats.SeasonsRun) / stats.Duration.Seconds()
	}

	summary := summarize(ctx, svc)
	log.Info(ctx, "final statistics",
		logger.Int("playersCreated", stats.PlayersCreated),
		logger.Int("seasonsRun", stats.SeasonsRun),
		logger.Int("playersProcessed", stats.Processed),
		logger.Int("playersDeveloped", stats.Developed),
		logger.Int("playersRetired", stats.Retired),
		logger.Int("regensCreated", stats.Regens),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("seasonsPerSecond", seasonsPerSecond),
		logger.Int("population", summary.Players),
		logger.Float64("meanAge", summary.MeanAge),
		logger.Float64("stdDevAge", summary.StdDevAge),
		logger.Float64("meanSalary", summary.MeanSalary),
		logger.Float64("meanMarketValue", summary.MeanMarketValue),
		logger.String("topPlayer", summary.TopPlayer),
		logger.Int("topMarketValue", summary.TopMarketValue))
}
