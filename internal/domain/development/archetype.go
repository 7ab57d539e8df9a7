// Package development models career archetypes: how a player's skills
// drift season to season as a function of age, archetype mix, trait,
// position weighting and recent performance.
package development

// Archetype is one of the ten career-shape patterns.
type Archetype int

// Archetype indexes are part of the persisted key encoding and must not
// be reordered.
const (
	Regular Archetype = iota
	LateBloomer
	EarlyPeak
	Consistent
	Decliner
	Stronghold
	OneTimeWonder
	Bust
	GOAT
	ElCrapo

	archetypeCount = 10
)

var archetypeNames = [archetypeCount]string{
	"regular", "late_bloomer", "early_peak", "consistent", "decliner",
	"stronghold", "one_time_wonder", "bust", "GOAT", "el_crapo",
}

func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// Valid reports whether the archetype index is in range.
func (a Archetype) Valid() bool { return a >= 0 && a < archetypeCount }

// archetypeRarity weights the random archetype draw. Values sum to 1.0.
var archetypeRarity = [archetypeCount]float64{
	Regular:       0.30,
	LateBloomer:   0.12,
	EarlyPeak:     0.12,
	Consistent:    0.15,
	Decliner:      0.10,
	Stronghold:    0.08,
	OneTimeWonder: 0.05,
	Bust:          0.04,
	GOAT:          0.01,
	ElCrapo:       0.03,
}

// ageBand maps ages up to and including Max to a growth multiplier.
// Positive values grow skills, negative values decay them.
type ageBand struct {
	Max  int
	Mult float64
}

// ageCurves defines each archetype's age-banded development multiplier.
// The last band's Max is a sentinel covering every older age.
var ageCurves = [archetypeCount][]ageBand{
	// Steady rise into the mid twenties, ordinary late decline.
	Regular: {{20, 1.6}, {24, 1.2}, {28, 0.4}, {31, -0.3}, {199, -1.2}},
	// Slow start, strongest growth in the late twenties.
	LateBloomer: {{21, 0.6}, {26, 1.4}, {30, 1.8}, {33, 0.2}, {199, -1.0}},
	// Fastest growth before 20, sharp decline after 28.
	EarlyPeak: {{19, 2.2}, {23, 1.0}, {27, 0.0}, {30, -1.2}, {199, -2.0}},
	// Modest growth, modest decline.
	Consistent: {{22, 1.0}, {28, 0.8}, {32, 0.3}, {35, -0.2}, {199, -0.6}},
	// Fades early and keeps fading.
	Decliner: {{20, 1.0}, {24, 0.3}, {28, -0.5}, {32, -1.4}, {199, -2.2}},
	// Declines minimally even past 40.
	Stronghold: {{24, 1.1}, {30, 0.8}, {34, 0.4}, {38, 0.1}, {199, -0.1}},
	// One explosive window, then a long slide.
	OneTimeWonder: {{19, 2.6}, {21, 0.8}, {24, -0.8}, {28, -1.6}, {199, -2.4}},
	// Looks great as a teenager, collapses after.
	Bust: {{18, 1.8}, {21, 0.2}, {25, -1.0}, {30, -1.6}, {199, -2.2}},
	// Never goes negative.
	GOAT: {{21, 2.0}, {27, 1.4}, {32, 0.8}, {36, 0.3}, {199, 0.0}},
	// Barely develops at all, decays hard.
	ElCrapo: {{19, 0.4}, {23, 0.0}, {27, -0.8}, {31, -1.6}, {199, -2.4}},
}

// AgeMultiplier returns the archetype's development multiplier at the
// given age.
func (a Archetype) AgeMultiplier(age int) float64 {
	if !a.Valid() {
		return 0
	}
	for _, band := range ageCurves[a] {
		if age <= band.Max {
			return band.Mult
		}
	}
	// Unreachable: the sentinel band covers all ages.
	return ageCurves[a][len(ageCurves[a])-1].Mult
}
