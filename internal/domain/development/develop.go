package development

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/profile"
	"github.com/pitchside/careersim/internal/domain/types"
)

// Season development tuning constants.
const (
	seasonNoiseLo = 0.75
	seasonNoiseHi = 1.25
	skillNoiseLo  = 0.70
	skillNoiseHi  = 1.30

	// Performance boost caps: a full season, a prolific scorer and a
	// creative passer each contribute a bounded share.
	gamesCap, gamesBoost     = 40.0, 0.4
	goalsCap, goalsBoost     = 30.0, 0.6
	assistsCap, assistsBoost = 20.0, 0.4
	perfScaleLo, perfScaleHi = 0.5, 1.0
)

// difficultyBand scales deltas by the current skill value: high values are
// harder to raise and easier to lose.
type difficultyBand struct {
	Min     float64
	Gain    float64
	Decline float64
}

var difficultyBands = []difficultyBand{
	{95, 0.3, 1.5},
	{90, 0.6, 1.2},
	{85, 0.8, 1.1},
	{75, 1.0, 1.0},
	{0, 1.5, 0.8},
}

func difficulty(current float64, gaining bool) float64 {
	for _, b := range difficultyBands {
		if current >= b.Min {
			if gaining {
				return b.Gain
			}
			return b.Decline
		}
	}
	return 1.0
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRand sets the random source. Tests inject a seeded source for
// reproducibility.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// Engine computes one season of per-skill development deltas.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates a development engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(1)), //nolint:gosec // game randomness, not crypto
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewKeys draws a fresh development/trait key pair from the engine's
// random source.
func (e *Engine) NewKeys() (devKey, traitKey int) {
	return NewKeys(e.rng)
}

// DevelopSeason computes one season's worth of skill drift for the player
// and returns the per-skill changes without mutating the record. Graded
// skills only; goal keeping develops only for goalkeepers. Results clamp
// to [1, 99].
func (e *Engine) DevelopSeason(p *model.PlayerRecord, devKey, traitKey int, prof profile.Profile) (types.DevelopmentResult, error) {
	career, err := DecodeKey(devKey)
	if err != nil {
		return nil, fmt.Errorf("decode development key: %w", err)
	}
	trait, err := DecodeTrait(traitKey)
	if err != nil {
		return nil, fmt.Errorf("decode trait key: %w", err)
	}

	finalMult := career.AgeMultiplier(p.Age) * career.BaseMultiplier() *
		uniform(e.rng, seasonNoiseLo, seasonNoiseHi)
	boost := e.performanceBoost(p.Stats)

	var maxMean float64
	var haveRow bool
	if prof != nil {
		maxMean, haveRow = prof.MaxMean(p.Position)
	}

	result := make(types.DevelopmentResult)
	for _, name := range model.GradedSkills() {
		if name == model.SkillGoalKeeping && p.Position != model.PositionGK {
			continue
		}
		old, present := p.Skills.Get(name)
		if !present {
			continue
		}

		// Position weight: the position's mean for this skill rescaled
		// into [0.5, 2.0] against the row's best mean, so a position
		// trains hardest what it values most.
		weight := 1.0
		if haveRow && maxMean > 0 {
			if mean, ok := prof.Mean(p.Position, name); ok {
				weight = weightFloor + (weightCeil-weightFloor)*(mean/maxMean)
			}
		}
		weight = trait.reweight(name, weight)

		base := finalMult * weight
		base = base*difficulty(old, base >= 0) + boost
		delta := base * uniform(e.rng, skillNoiseLo, skillNoiseHi)

		next := model.ClampSkill(old + delta)
		result[name] = types.SkillChange{
			Old:   old,
			New:   next,
			Delta: int(math.Round(next - old)),
		}
	}
	return result, nil
}

// performanceBoost derives a bounded development bonus from the season's
// games, goals and assists, scaled by a random factor.
func (e *Engine) performanceBoost(s model.SeasonStats) float64 {
	boost := math.Min(float64(s.Games), gamesCap) / gamesCap * gamesBoost
	boost += math.Min(float64(s.Goals), goalsCap) / goalsCap * goalsBoost
	boost += math.Min(float64(s.Assists), assistsCap) / assistsCap * assistsBoost
	return boost * uniform(e.rng, perfScaleLo, perfScaleHi)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
