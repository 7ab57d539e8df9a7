// Package model contains domain records passed between layers.
package model

// FreeAgentClubID is the reserved "No Club" identifier. Free agents are
// excluded from position profiles, carry a market value of exactly 0 and
// retire more readily.
const FreeAgentClubID = 141

// Position is a registered playing position.
type Position string

// Registered positions, matching the host game's numbering of the twelve
// positional one-hot flags.
const (
	PositionGK  Position = "GK"
	PositionCWP Position = "CWP"
	PositionCBT Position = "CBT"
	PositionSB  Position = "SB"
	PositionDMF Position = "DMF"
	PositionWB  Position = "WB"
	PositionCMF Position = "CMF"
	PositionSMF Position = "SMF"
	PositionAMF Position = "AMF"
	PositionWF  Position = "WF"
	PositionSS  Position = "SS"
	PositionCF  Position = "CF"
)

// Positions returns every registered position in flag order.
// The returned slice must not be mutated.
func Positions() []Position { return positions }

var positions = []Position{
	PositionGK, PositionCWP, PositionCBT, PositionSB, PositionDMF,
	PositionWB, PositionCMF, PositionSMF, PositionAMF, PositionWF,
	PositionSS, PositionCF,
}

// SeasonStats holds one season's worth of performance counters.
type SeasonStats struct {
	Games   int
	Goals   int
	Assists int
}

// Financials carries the money fields recomputed each season.
type Financials struct {
	Salary                 int
	MarketValue            int
	ContractYearsRemaining int
	YearlyWageRise         float64
}

// PlayerRecord is the engine's view of a player. The web and storage
// layers pass it through without interpreting DevelopmentKey or TraitKey.
type PlayerRecord struct {
	ID          string
	Name        string
	Nationality string
	Age         int
	Position    Position
	ClubID      int

	// PositionFlags holds the twelve one-hot can-play flags.
	PositionFlags map[Position]int

	// Skills uses key absence for missing values; see SkillSet.
	Skills SkillSet

	HeightCM     int
	WeightKG     int
	SkinColor    int
	StrongFoot   string
	FavouredSide string

	Financials Financials
	Stats      SeasonStats

	// DevelopmentKey and TraitKey are opaque encoded career archetypes;
	// see the development package for the codec.
	DevelopmentKey int
	TraitKey       int
}

// IsFreeAgent reports whether the player belongs to no club.
func (p *PlayerRecord) IsFreeAgent() bool {
	return p.ClubID == FreeAgentClubID || p.ClubID == 0
}

// Clone returns a deep copy safe to mutate independently.
func (p *PlayerRecord) Clone() *PlayerRecord {
	out := *p
	out.Skills = p.Skills.Clone()
	out.PositionFlags = make(map[Position]int, len(p.PositionFlags))
	for k, v := range p.PositionFlags {
		out.PositionFlags[k] = v
	}
	return &out
}

// OneHotFlags returns a flag map with exactly the given position set to 1
// and every other registered position set to 0.
func OneHotFlags(pos Position) map[Position]int {
	flags := make(map[Position]int, len(positions))
	for _, p := range positions {
		flags[p] = 0
	}
	flags[pos] = 1
	return flags
}
