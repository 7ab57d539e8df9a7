package leaguesim

import (
	"context"
	"fmt"
	"math/rand"

	service "github.com/pitchside/careersim/internal/app"
	"github.com/pitchside/careersim/internal/domain/generator"
	"github.com/pitchside/careersim/internal/domain/model"
)

// Age spread for the bootstrap population. New signings come out of the
// generator at youth age, so the first squads are aged up to look like an
// established league.
const (
	bootstrapMinAge = 17
	bootstrapMaxAge = 34
)

// squadPlan is a 23-man positional layout. Squads larger or smaller than
// the plan cycle through it.
var squadPlan = []model.Position{
	model.PositionGK, model.PositionGK, model.PositionGK,
	model.PositionCBT, model.PositionCBT, model.PositionCBT, model.PositionCBT,
	model.PositionSB, model.PositionSB,
	model.PositionWB,
	model.PositionDMF, model.PositionDMF,
	model.PositionCMF, model.PositionCMF,
	model.PositionSMF, model.PositionSMF,
	model.PositionAMF, model.PositionAMF,
	model.PositionWF,
	model.PositionSS,
	model.PositionCF, model.PositionCF, model.PositionCF,
}

// bootstrap fills the store with Teams clubs of SquadSize players each and
// returns the number of players created. Committing a squad registers its
// club as a side effect.
func bootstrap(ctx context.Context, svc *service.Service, cfg *Config) (int, error) {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // simulation randomness
	gen := generator.NewGenerator(generator.WithRand(rng))

	created := 0
	for club := 1; club <= cfg.Teams; club++ {
		squad := make([]*model.PlayerRecord, 0, cfg.SquadSize)
		for i := 0; i < cfg.SquadSize; i++ {
			pos := squadPlan[i%len(squadPlan)]
			p := gen.NewPlayer(club, pos, svc.PositionProfile(ctx))
			p.Age = bootstrapMinAge + rng.Intn(bootstrapMaxAge-bootstrapMinAge+1)
			p.Financials = svc.CalculateFinancials(ctx, p)
			squad = append(squad, p)
		}
		if err := svc.Store().CommitChunk(ctx, squad, nil); err != nil {
			return created, fmt.Errorf("commit squad for club %d: %w", club, err)
		}
		created += len(squad)
	}

	svc.InvalidateProfiles()
	return created, nil
}
