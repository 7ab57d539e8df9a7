// Package types contains result records shared across layers.
package types

import "github.com/pitchside/careersim/internal/domain/model"

// SkillChange records one skill's movement over a season.
type SkillChange struct {
	Old   float64 `json:"old"`
	New   float64 `json:"new"`
	Delta int     `json:"delta"`
}

// DevelopmentResult maps each developed skill to its change.
type DevelopmentResult map[model.SkillName]SkillChange

// RetirementDecision is the outcome of a retirement evaluation.
type RetirementDecision struct {
	WillRetire  bool    `json:"will_retire"`
	Probability float64 `json:"probability"`
	Reason      string  `json:"reason"`

	// Component factors, reported for transparency.
	AgeFactor    float64 `json:"age_factor"`
	SalaryFactor float64 `json:"salary_factor"`
	ClubFactor   float64 `json:"club_factor"`
}

// ValuationEntry is one row of a market-value ranking.
type ValuationEntry struct {
	Rank        int            `json:"rank"`
	PlayerID    string         `json:"player_id"`
	Name        string         `json:"name"`
	Position    model.Position `json:"position"`
	ClubID      int            `json:"club_id"`
	MarketValue int            `json:"market_value"`
}

// TeamFinancials summarizes a club's wage bill and squad value.
type TeamFinancials struct {
	TotalSalary        int `json:"total_salary"`
	TotalMarketValue   int `json:"total_market_value"`
	PlayerCount        int `json:"player_count"`
	AverageSalary      int `json:"average_salary"`
	AverageMarketValue int `json:"average_market_value"`
}
