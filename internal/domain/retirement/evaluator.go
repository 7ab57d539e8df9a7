// Package retirement decides whether an aging player hangs up their boots.
package retirement

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/pitchside/careersim/internal/domain/finance"
	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/types"
)

// Retirement model constants. Nobody retires before 30; the age factor
// ramps to its ceiling at 44; a high salary can argue a player out of
// retiring by up to 30%.
const (
	minRetirementAge = 30
	ageRampYears     = 13.0
	ageRampScale     = 0.75
	ageFactorCap     = 0.8
	freeAgentFactor  = 0.25
	salaryCapMult    = 15
	salaryReduction  = 0.3

	lowSalaryMult  = 2
	highSalaryMult = 10
)

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithRand sets the random source. Tests inject a seeded source for
// reproducibility.
func WithRand(rng *rand.Rand) Option {
	return func(e *Evaluator) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// Evaluator draws retirement decisions. The probability model is pure;
// only the final Bernoulli draw consumes randomness.
type Evaluator struct {
	rng *rand.Rand
}

// NewEvaluator creates an Evaluator with configuration options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		rng: rand.New(rand.NewSource(1)), //nolint:gosec // game randomness, not crypto
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Probability returns the retirement probability and its component
// factors without drawing a decision. Always 0 below age 30.
func Probability(p *model.PlayerRecord) (prob, ageFactor, salaryFactor, clubFactor float64) {
	if p.Age < minRetirementAge {
		return 0, 0, 0, 0
	}

	ageFactor = math.Min(ageFactorCap, (float64(p.Age-minRetirementAge)/ageRampYears)*ageRampScale)

	salaryNorm := math.Min(1.0, float64(p.Financials.Salary)/float64(finance.BaseSalaryFloor*salaryCapMult))
	salaryFactor = 1.0 - salaryNorm

	if p.IsFreeAgent() {
		clubFactor = freeAgentFactor
	}

	prob = ageFactor + clubFactor - salaryFactor*salaryReduction
	prob = math.Max(0.0, math.Min(1.0, prob))
	return prob, ageFactor, salaryFactor, clubFactor
}

// Evaluate draws a retire/continue decision with probability and a
// narrative reason reflecting the dominant factor.
func (e *Evaluator) Evaluate(p *model.PlayerRecord) types.RetirementDecision {
	prob, ageFactor, salaryFactor, clubFactor := Probability(p)
	if p.Age < minRetirementAge {
		return types.RetirementDecision{
			WillRetire:  false,
			Probability: 0,
			Reason:      "Too young to consider retirement",
		}
	}

	willRetire := e.rng.Float64() < prob

	salary := p.Financials.Salary
	var reason string
	switch {
	case willRetire && p.IsFreeAgent():
		reason = fmt.Sprintf("Retired due to age (%d) and being without a club", p.Age)
	case willRetire && salary < finance.BaseSalaryFloor*lowSalaryMult:
		reason = fmt.Sprintf("Retired due to age (%d) and low salary (€%s)", p.Age, commas(salary))
	case willRetire:
		reason = fmt.Sprintf("Retired due to age (%d) despite good salary (€%s)", p.Age, commas(salary))
	case salary > finance.BaseSalaryFloor*highSalaryMult:
		reason = fmt.Sprintf("Continues due to high salary (€%s) despite age (%d)", commas(salary), p.Age)
	case !p.IsFreeAgent():
		reason = fmt.Sprintf("Continues due to being under contract at age (%d)", p.Age)
	default:
		reason = fmt.Sprintf("Continues despite age (%d) and current circumstances", p.Age)
	}

	return types.RetirementDecision{
		WillRetire:   willRetire,
		Probability:  prob,
		Reason:       reason,
		AgeFactor:    ageFactor,
		SalaryFactor: salaryFactor,
		ClubFactor:   clubFactor,
	}
}

// commas formats an amount with thousands separators, e.g. 1,234,000.
func commas(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
