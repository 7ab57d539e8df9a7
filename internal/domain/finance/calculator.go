// Package finance converts a player's skill vector and position profile
// into salary, market value, contract length and yearly wage rise.
package finance

import (
	"math"
	"math/rand"

	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/profile"
	"github.com/pitchside/careersim/internal/domain/types"
)

// Salary model constants.
const (
	// BaseSalaryFloor is the league-wide minimum salary.
	BaseSalaryFloor = 300_000

	norm           = 75.0
	binaryImpact   = 0.15
	rangeStart     = 70.0
	rangeEnd       = 99.0
	minMultiplier  = 0.5
	maxMultiplier  = 4.0
	defenseBoost   = 4.0
	goalKeepBoost  = 4.0
	scoreDivisor   = 1000.0
	scoreExponent  = 3.0
	salaryScaler   = 1_170_000.0
	marketValueMul = 1.5
)

// Age curve reference points: flat 4.0 up to 16, down to 1.0 at 29
// (exponent 1.5), down to 0.01 at 40 (exponent 3.0), flat after.
const (
	youngAge, youngFactor = 16.0, 4.0
	peakAge, peakFactor   = 29.0, 1.0
	oldAge, oldFactor     = 40.0, 0.01
	youngCurveExp         = 1.5
	oldCurveExp           = 3.0
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithRand sets the random source. Tests inject a seeded source for
// reproducibility.
func WithRand(rng *rand.Rand) Option {
	return func(c *Calculator) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// Calculator prices players. Randomized outputs draw from the configured
// source; the deterministic parts (BaseSalary, AgeMultiplier) are pure.
type Calculator struct {
	rng *rand.Rand
}

// NewCalculator creates a Calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		rng: rand.New(rand.NewSource(1)), //nolint:gosec // game randomness, not crypto
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SkillMultiplier maps a skill value onto the salary multiplier: fixed
// minimum below 70, fixed maximum at 99 and above, exponential
// interpolation in between. Monotonically non-decreasing over [70, 99].
func SkillMultiplier(v float64) float64 {
	switch {
	case v >= rangeEnd:
		return maxMultiplier
	case v > rangeStart:
		progress := (v - rangeStart) / (rangeEnd - rangeStart)
		return minMultiplier * math.Pow(maxMultiplier/minMultiplier, progress)
	default:
		return minMultiplier
	}
}

// BaseSalary computes the pre-randomization salary from the player's
// present skills weighted by their importance to the registered position.
// Absent skills are skipped; an unknown position or skill mean falls back
// to the norm constant (importance 1.0). Never below BaseSalaryFloor.
func (c *Calculator) BaseSalary(p *model.PlayerRecord, prof profile.Profile) int {
	var total float64
	for _, name := range model.AllSkills() {
		v, present := p.Skills.Get(name)
		if !present {
			continue
		}

		effective := v * SkillMultiplier(v)

		importance := 1.0
		if prof != nil {
			if mean, ok := prof.Mean(p.Position, name); ok {
				importance = mean / norm
			}
		}

		contribution := effective * importance
		switch name {
		case model.SkillDefense:
			contribution *= defenseBoost
		case model.SkillGoalKeeping:
			contribution *= goalKeepBoost
		}
		if model.IsBinarySkill(name) {
			contribution *= binaryImpact
		}
		total += contribution
	}

	if total < 0 {
		total = 0
	}
	powered := math.Pow(total/scoreDivisor, scoreExponent)
	salary := BaseSalaryFloor + powered*salaryScaler
	return maxInt(BaseSalaryFloor, roundToThousand(salary))
}

// RandomizedSalary applies the +/-20% contract negotiation swing.
func (c *Calculator) RandomizedSalary(base int) int {
	factor := uniform(c.rng, -0.20, 0.20)
	adjusted := float64(base) * (1 + factor)
	return roundToThousand(math.Max(BaseSalaryFloor, adjusted))
}

// AgeMultiplier is the market-value age curve. This curve is the engine's
// main tuning surface; the reference points are exact.
func AgeMultiplier(age int) float64 {
	a := float64(age)
	switch {
	case a <= youngAge:
		return youngFactor
	case a < peakAge:
		progress := (a - youngAge) / (peakAge - youngAge)
		return peakFactor + (youngFactor-peakFactor)*math.Pow(1-progress, youngCurveExp)
	case a == peakAge:
		return peakFactor
	case a < oldAge:
		progress := (a - peakAge) / (oldAge - peakAge)
		return oldFactor + (peakFactor-oldFactor)*math.Pow(1-progress, oldCurveExp)
	default:
		return oldFactor
	}
}

// MarketValueFromBase prices a player off the base (pre-randomization)
// salary. Free agents are worth exactly 0.
func (c *Calculator) MarketValueFromBase(baseSalary, age int, isFreeAgent bool) int {
	if isFreeAgent {
		return 0
	}
	value := float64(baseSalary) * marketValueMul * AgeMultiplier(age)
	value *= 1 + uniform(c.rng, -0.15, 0.25)
	return maxInt(0, roundToThousand(value))
}

// MarketValueFromCurrent prices a player off the current salary, leaving
// the salary itself untouched. Used by the reprice-only season pass.
func (c *Calculator) MarketValueFromCurrent(currentSalary, age int, isFreeAgent bool) int {
	if isFreeAgent {
		return 0
	}
	value := float64(currentSalary) * marketValueMul * AgeMultiplier(age)
	return int(value)
}

// ContractYears draws a contract length from the age-banded range.
func (c *Calculator) ContractYears(age int) int {
	switch {
	case age > 32:
		return c.randRange(1, 2)
	case age > 30:
		return c.randRange(1, 3)
	default:
		return c.randRange(2, 5)
	}
}

// YearlyWageRise picks a raise fraction from categorical age/skill bands,
// boosted 10% for below-market earners and capped at 0.25.
func (c *Calculator) YearlyWageRise(p *model.PlayerRecord, salary int) float64 {
	age := p.Age
	avgSkill, ok := p.Skills.GradedMean()
	if !ok {
		avgSkill = 60.0
	}

	var rise float64
	switch {
	case age <= 23 && avgSkill >= 78:
		rise = uniform(c.rng, 0.15, 0.25)
	case age <= 23 && avgSkill >= 70:
		rise = uniform(c.rng, 0.10, 0.20)
	case age <= 26 && avgSkill >= 75:
		rise = uniform(c.rng, 0.08, 0.18)
	case age <= 29 && avgSkill >= 72:
		rise = uniform(c.rng, 0.05, 0.12)
	case age > 32 || avgSkill < 65:
		rise = uniform(c.rng, 0.00, 0.05)
	default:
		rise = uniform(c.rng, 0.03, 0.08)
	}

	if salary < BaseSalaryFloor*5 {
		rise *= 1.1
	}
	return math.Round(math.Min(rise, 0.25)*1000) / 1000
}

// Calculate produces the full financial record for a player: randomized
// salary, market value off the base salary, contract length and wage rise.
func (c *Calculator) Calculate(p *model.PlayerRecord, prof profile.Profile) model.Financials {
	base := c.BaseSalary(p, prof)
	marketValue := c.MarketValueFromBase(base, p.Age, p.IsFreeAgent())
	salary := c.RandomizedSalary(base)
	return model.Financials{
		Salary:                 salary,
		MarketValue:            marketValue,
		ContractYearsRemaining: c.ContractYears(p.Age),
		YearlyWageRise:         c.YearlyWageRise(p, salary),
	}
}

// TeamFinancials aggregates a club's wage bill and squad value.
func (c *Calculator) TeamFinancials(players []*model.PlayerRecord, prof profile.Profile) types.TeamFinancials {
	out := types.TeamFinancials{PlayerCount: len(players)}
	for _, p := range players {
		fin := c.Calculate(p, prof)
		out.TotalSalary += fin.Salary
		out.TotalMarketValue += fin.MarketValue
	}
	if out.PlayerCount > 0 {
		out.AverageSalary = out.TotalSalary / out.PlayerCount
		out.AverageMarketValue = out.TotalMarketValue / out.PlayerCount
	}
	return out
}

func (c *Calculator) randRange(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func roundToThousand(v float64) int {
	return int(math.Round(v/1000) * 1000)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
