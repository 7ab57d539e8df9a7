package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/pitchside/careersim/internal/adapters/repository"
	service "github.com/pitchside/careersim/internal/app"
	"github.com/pitchside/careersim/internal/domain/development"
	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/pkg/logger"
	"github.com/pitchside/careersim/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func testPlayer(id int, clubID int, pos model.Position, age int) *model.PlayerRecord {
	rng := rand.New(rand.NewSource(int64(id))) //nolint:gosec // test data
	devKey, traitKey := development.NewKeys(rng)

	skills := model.SkillSet{}
	for _, name := range model.GradedSkills() {
		skills.Set(name, float64(70+rng.Intn(15)))
	}

	return &model.PlayerRecord{
		ID:             fmt.Sprintf("player-%d", id),
		Name:           fmt.Sprintf("Player %d", id),
		Nationality:    "England",
		Age:            age,
		Position:       pos,
		ClubID:         clubID,
		PositionFlags:  model.OneHotFlags(pos),
		Skills:         skills,
		HeightCM:       180,
		WeightKG:       78,
		SkinColor:      1,
		StrongFoot:     "Right",
		DevelopmentKey: devKey,
		TraitKey:       traitKey,
	}
}

// seedStore builds a store with two clubs holding `perClub` players each,
// ages spread across the career window.
func seedStore(ctx context.Context, perClub int) *repository.MemStore {
	store := repository.NewMemStore(repository.WithClubs(1, 2))
	positions := model.Positions()
	var players []*model.PlayerRecord
	id := 0
	for club := 1; club <= 2; club++ {
		for i := 0; i < perClub; i++ {
			age := 17 + (i*3)%22
			players = append(players, testPlayer(id, club, positions[id%len(positions)], age))
			id++
		}
	}
	if err := store.CommitChunk(ctx, players, nil); err != nil {
		panic(err)
	}
	return store
}

// profileRebuilds reads the position-profile rebuild counter.
func profileRebuilds() float64 {
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() == "careersim_engine_profile_rebuilds_total" {
			return f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.Store(), ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithSeed(7),
			service.WithWorkerCount(2),
			service.WithChunkSize(10),
			service.WithQueueCapacity(64),
			service.WithProfileTTL(time.Minute),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And starting again should fail", func() {
				So(svc.Start(ctx), ShouldEqual, service.ErrAlreadyStarted)
			})
		})

		Convey("When running a season before starting", func() {
			_, err := svc.RunSeason(ctx)

			Convey("Then it should refuse", func() {
				So(err, ShouldEqual, service.ErrNotStarted)
			})
		})
	})
}

func TestService_GenerateNewPlayer(t *testing.T) {
	Convey("Given a service backed by a store with registered clubs", t, func() {
		ctx := context.Background()
		store := seedStore(ctx, 5)
		svc := service.New(service.WithStore(store), service.WithSeed(11))

		Convey("When generating for an unknown club", func() {
			_, err := svc.GenerateNewPlayer(ctx, 999, model.PositionCF)

			Convey("Then it should report the missing club", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrClubNotFound), ShouldBeTrue)
			})
		})

		Convey("When generating for a known club", func() {
			before := store.Count(ctx)
			p, err := svc.GenerateNewPlayer(ctx, 1, model.PositionCF)

			Convey("Then the player is created and persisted", func() {
				So(err, ShouldBeNil)
				So(p, ShouldNotBeNil)
				So(store.Count(ctx), ShouldEqual, before+1)
			})

			Convey("And the player looks like a youth signing", func() {
				So(p.Age, ShouldBeBetweenOrEqual, 16, 18)
				So(p.Position, ShouldEqual, model.PositionCF)
				So(p.ClubID, ShouldEqual, 1)
				So(p.Financials.Salary, ShouldBeGreaterThan, 0)
				So(p.Financials.MarketValue, ShouldBeGreaterThan, 0)
				So(p.Financials.ContractYearsRemaining, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When generating without a position", func() {
			p, err := svc.GenerateNewPlayer(ctx, 2, "")

			Convey("Then a registered position is drawn", func() {
				So(err, ShouldBeNil)
				So(p.Position, ShouldBeIn, model.Positions())
				So(p.PositionFlags[p.Position], ShouldEqual, 1)
			})
		})
	})
}

func TestService_RunSeason(t *testing.T) {
	Convey("Given a started service over a seeded population", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store := seedStore(ctx, 15)
		svc := service.New(
			service.WithStore(store),
			service.WithSeed(3),
			service.WithChunkSize(8),
			service.WithWorkerCount(2),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		total := store.Count(ctx)

		Convey("When running one season", func() {
			report, err := svc.RunSeason(ctx)

			Convey("Then every player is processed exactly once", func() {
				So(err, ShouldBeNil)
				So(report.Processed, ShouldEqual, total)
				So(report.Chunks, ShouldEqual, (total+7)/8)
			})

			Convey("And retirees are replaced one for one", func() {
				So(report.Regens, ShouldEqual, report.Retired)
				So(store.Count(ctx), ShouldEqual, total)
			})

			Convey("And every surviving player carries fresh financials", func() {
				for _, p := range store.Players(ctx, false) {
					So(p.Financials.Salary, ShouldBeGreaterThan, 0)
				}
			})

			Convey("And a rerun without reset skips the processed players", func() {
				rerun, err := svc.RunSeason(ctx)
				So(err, ShouldBeNil)
				// Only regens created mid-season are unseen.
				So(rerun.Processed, ShouldEqual, report.Regens)
			})

			Convey("And a reset allows a full new season", func() {
				svc.ResetSeason(ctx)
				rerun, err := svc.RunSeason(ctx)
				So(err, ShouldBeNil)
				So(rerun.Processed, ShouldEqual, total)
			})
		})
	})
}

func TestService_RunSeasonCancellation(t *testing.T) {
	Convey("Given a started service with many chunks pending", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		store := seedStore(ctx, 150)
		svc := service.New(
			service.WithStore(store),
			service.WithSeed(19),
			service.WithChunkSize(4),
			service.WithWorkerCount(1),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When the context is cancelled", func() {
			cancel()
			done := make(chan error, 1)
			go func() {
				_, err := svc.RunSeason(ctx)
				done <- err
			}()

			Convey("Then the season pass settles instead of blocking forever", func() {
				select {
				case err := <-done:
					So(err, ShouldNotBeNil)
				case <-time.After(10 * time.Second):
					So("season run never returned after cancellation", ShouldBeEmpty)
				}
			})
		})
	})
}

func TestService_SeasonProfileBaseline(t *testing.T) {
	Convey("Given a started service over a multi-chunk population", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store := seedStore(ctx, 40)
		svc := service.New(
			service.WithStore(store),
			service.WithSeed(17),
			service.WithChunkSize(8),
			service.WithWorkerCount(2),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When running one season", func() {
			before := profileRebuilds()
			report, err := svc.RunSeason(ctx)

			Convey("Then every chunk prices against one pre-season profile", func() {
				So(err, ShouldBeNil)
				So(report.Chunks, ShouldBeGreaterThan, 1)
				// At most the initial warm-up recomputes; the commits in
				// between must not trigger per-chunk rebuilds.
				So(profileRebuilds()-before, ShouldBeLessThanOrEqualTo, 1)
			})
		})
	})
}

func TestService_RepriceMarketValues(t *testing.T) {
	Convey("Given a service over a seeded population", t, func() {
		ctx := context.Background()
		store := seedStore(ctx, 10)
		svc := service.New(service.WithStore(store), service.WithSeed(5))

		// Give everyone a salary so market value has a base.
		players := store.Players(ctx, false)
		for _, p := range players {
			p.Financials = svc.CalculateFinancials(ctx, p)
		}
		So(store.CommitChunk(ctx, players, nil), ShouldBeNil)

		Convey("When repricing market values", func() {
			updated, err := svc.RepriceMarketValues(ctx)

			Convey("Then every contracted player is updated", func() {
				So(err, ShouldBeNil)
				So(updated, ShouldEqual, len(players))
				for _, p := range store.Players(ctx, true) {
					So(p.Financials.MarketValue, ShouldBeGreaterThan, 0)
				}
			})
		})
	})
}

func TestService_TopValuations(t *testing.T) {
	Convey("Given a priced population", t, func() {
		ctx := context.Background()
		store := seedStore(ctx, 10)
		svc := service.New(service.WithStore(store), service.WithSeed(9))

		players := store.Players(ctx, false)
		for _, p := range players {
			p.Financials = svc.CalculateFinancials(ctx, p)
		}
		So(store.CommitChunk(ctx, players, nil), ShouldBeNil)

		Convey("When asking for the top five overall", func() {
			top := svc.TopValuations(ctx, "", 5)

			Convey("Then five entries come back ranked by value", func() {
				So(top, ShouldHaveLength, 5)
				for i, entry := range top {
					So(entry.Rank, ShouldEqual, i+1)
					if i > 0 {
						So(entry.MarketValue, ShouldBeLessThanOrEqualTo, top[i-1].MarketValue)
					}
				}
			})
		})

		Convey("When filtering by position", func() {
			top := svc.TopValuations(ctx, model.PositionGK, 50)

			Convey("Then only that position appears", func() {
				So(len(top), ShouldBeGreaterThan, 0)
				for _, entry := range top {
					So(entry.Position, ShouldEqual, model.PositionGK)
				}
			})
		})

		Convey("When asking for zero entries", func() {
			So(svc.TopValuations(ctx, "", 0), ShouldBeNil)
		})
	})
}

func TestService_TeamFinancials(t *testing.T) {
	Convey("Given a priced population", t, func() {
		ctx := context.Background()
		store := seedStore(ctx, 8)
		svc := service.New(service.WithStore(store), service.WithSeed(13))

		Convey("When summarizing a known club", func() {
			summary, err := svc.TeamFinancials(ctx, 1)

			Convey("Then the roster is priced and aggregated", func() {
				So(err, ShouldBeNil)
				So(summary.PlayerCount, ShouldEqual, 8)
				So(summary.TotalSalary, ShouldBeGreaterThan, 0)
				So(summary.AverageSalary, ShouldBeGreaterThan, 0)
				So(summary.TotalMarketValue, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When summarizing an unknown club", func() {
			_, err := svc.TeamFinancials(ctx, 404)

			Convey("Then it should report the missing club", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrClubNotFound), ShouldBeTrue)
			})
		})
	})
}
