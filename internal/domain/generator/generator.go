// Package generator procedurally creates new players: fresh youth intakes
// for a club and regens replacing retirees.
package generator

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/pitchside/careersim/internal/domain/development"
	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/profile"
)

// Generation tuning constants.
const (
	minNewAge = 16
	maxNewAge = 18

	// ageFactorBase scales generated skills by age: 60% of the target at
	// 16, +7.5% per year.
	ageFactorBase = 0.6
	ageFactorStep = 0.075

	attributeNoise = 8.0

	// specialInheritChance is the per-skill probability that a regen
	// inherits one of the retiree's special abilities.
	specialInheritChance = 0.7

	// specialBinaryThreshold: a fresh youth player starts with a special
	// ability when the position's population majority has it.
	specialBinaryThreshold = 0.5

	rightFootChance = 0.78
)

// genericBaseline is the fallback attribute target used when the position
// has no profile row.
var genericBaseline = map[model.SkillName]float64{
	model.SkillAttack: 50, model.SkillDefense: 50, model.SkillBalance: 62,
	model.SkillStamina: 66, model.SkillTopSpeed: 66, model.SkillAcceleration: 66,
	model.SkillResponse: 62, model.SkillAgility: 62, model.SkillDribbleAccuracy: 60,
	model.SkillDribbleSpeed: 60, model.SkillShortPassAcc: 62, model.SkillShortPassSpeed: 60,
	model.SkillLongPassAcc: 58, model.SkillLongPassSpeed: 58, model.SkillShotAccuracy: 56,
	model.SkillShotPower: 62, model.SkillShotTechnique: 56, model.SkillFreeKickAcc: 52,
	model.SkillSwerve: 54, model.SkillHeading: 58, model.SkillJump: 62,
	model.SkillTechnique: 60, model.SkillAggression: 60, model.SkillMentality: 62,
	model.SkillGoalKeeping: 50, model.SkillTeamWork: 62, model.SkillConsistency: 60,
	model.SkillConditionFitness: 62,
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRand sets the random source. Tests inject a seeded source for
// reproducibility.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// Generator creates players. All randomness comes from the configured
// source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(1)), //nolint:gosec // game randomness, not crypto
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SelectNationality draws from the weighted country table.
func (g *Generator) SelectNationality() Country {
	r := g.rng.Float64() * totalCountryWeight
	var cum float64
	for _, c := range countries {
		cum += c.Weight
		if r < cum {
			return c
		}
	}
	return countries[0]
}

// GenerateName draws a first and last name from the nationality's pools,
// falling back to the English pools where a nationality has none.
func (g *Generator) GenerateName(nationality string) (first, last string) {
	fp := firstNames(nationality)
	lp := surnames(nationality)
	return fp[g.rng.Intn(len(fp))], lp[g.rng.Intn(len(lp))]
}

// GenerateAttributes builds a skill vector for a new player of the given
// age and position. Graded skills come from the position's profile row
// (or the generic baseline when the position is unprofiled) scaled by the
// age factor with noise, clamped to [1, 99]. Special abilities switch on
// where the position's population majority has them.
func (g *Generator) GenerateAttributes(age int, pos model.Position, prof profile.Profile) model.SkillSet {
	var row map[model.SkillName]float64
	if prof != nil {
		row = prof.Row(pos)
	}

	factor := AgeFactor(age)
	skills := make(model.SkillSet, len(genericBaseline))
	for _, name := range model.GradedSkills() {
		target, ok := 0.0, false
		if row != nil {
			target, ok = row[name]
		}
		if !ok {
			target = genericBaseline[name]
		}
		v := math.Round(target*factor + g.uniform(-attributeNoise, attributeNoise))
		skills[name] = model.ClampSkill(v)
	}

	for _, name := range model.BinarySkills() {
		on := 0.0
		if row != nil {
			if mean, ok := row[name]; ok && mean >= specialBinaryThreshold {
				on = 1.0
			}
		}
		skills[name] = on
	}
	return skills
}

// AgeFactor returns the fraction of adult skill a player of the given age
// starts with: 60% at 16, 75% at 18.
func AgeFactor(age int) float64 {
	return ageFactorBase + float64(age-minNewAge)*ageFactorStep
}

// NewPlayer creates a fresh youth player for a club. An empty position
// registers the player at a uniformly drawn one. The caller owns the
// club-exists precondition and subsequent financial pricing.
func (g *Generator) NewPlayer(clubID int, pos model.Position, prof profile.Profile) *model.PlayerRecord {
	if pos == "" {
		all := model.Positions()
		pos = all[g.rng.Intn(len(all))]
	}
	age := minNewAge + g.rng.Intn(maxNewAge-minNewAge+1)
	country := g.SelectNationality()
	first, last := g.GenerateName(country.Name)

	p := &model.PlayerRecord{
		ID:            uuid.NewString(),
		Name:          first + " " + last,
		Nationality:   country.Name,
		Age:           age,
		Position:      pos,
		ClubID:        clubID,
		PositionFlags: model.OneHotFlags(pos),
		Skills:        g.GenerateAttributes(age, pos, prof),
		SkinColor:     country.Skin,
	}
	g.fillPhysical(p)
	p.DevelopmentKey, p.TraitKey = development.NewKeys(g.rng)
	return p
}

// NewReplacement creates the regen for a retiring player: same age range
// and nationality logic, but graded skills scale from the retiree's own
// vector, clamped against the observed population ranges where available.
// Special abilities inherit with a per-skill coin flip; exactly the flag
// matching the retiree's registered position is set.
func (g *Generator) NewReplacement(retiring *model.PlayerRecord, ranges model.ColumnRanges) *model.PlayerRecord {
	age := minNewAge + g.rng.Intn(maxNewAge-minNewAge+1)
	first, last := g.GenerateName(retiring.Nationality)
	factor := AgeFactor(age)

	skills := make(model.SkillSet, len(retiring.Skills))
	for _, name := range model.GradedSkills() {
		old, present := retiring.Skills.Get(name)
		if !present {
			continue
		}
		v := math.Round(old*factor + g.uniform(-attributeNoise, attributeNoise))
		skills[name] = ranges.Clamp(name, v)
	}
	for _, name := range model.BinarySkills() {
		if v, present := retiring.Skills.Get(name); present && v >= 1 {
			if g.rng.Float64() < specialInheritChance {
				skills[name] = 1
			} else {
				skills[name] = 0
			}
		} else if present {
			skills[name] = 0
		}
	}

	p := &model.PlayerRecord{
		ID:            uuid.NewString(),
		Name:          first + " " + last,
		Nationality:   retiring.Nationality,
		Age:           age,
		Position:      retiring.Position,
		ClubID:        retiring.ClubID,
		PositionFlags: model.OneHotFlags(retiring.Position),
		Skills:        skills,
		SkinColor:     SkinColorFor(retiring.Nationality),
	}
	g.fillPhysical(p)
	p.DevelopmentKey, p.TraitKey = development.NewKeys(g.rng)
	return p
}

// fillPhysical draws height, weight and footedness. Keepers and centre
// backs trend taller.
func (g *Generator) fillPhysical(p *model.PlayerRecord) {
	lo, hi := 168, 188
	switch p.Position {
	case model.PositionGK, model.PositionCBT, model.PositionCWP:
		lo, hi = 180, 197
	case model.PositionSMF, model.PositionWF, model.PositionSB:
		lo, hi = 165, 182
	}
	p.HeightCM = lo + g.rng.Intn(hi-lo+1)
	p.WeightKG = p.HeightCM - 100 + g.rng.Intn(11) - 5

	if g.rng.Float64() < rightFootChance {
		p.StrongFoot, p.FavouredSide = "Right", "Right"
	} else {
		p.StrongFoot, p.FavouredSide = "Left", "Left"
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
