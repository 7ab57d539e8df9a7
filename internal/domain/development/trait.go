package development

import "github.com/pitchside/careersim/internal/domain/model"

// Trait reweights which skills an archetype profile affects. Exactly one
// trait is assigned per player; it is persisted as a small integer.
type Trait int

// Trait indexes are part of the persisted encoding and must not be
// reordered.
const (
	TraitRegular Trait = iota
	TraitJokester
	TraitSharpie
	TraitGeneticFreak

	traitCount = 4
)

var traitNames = [traitCount]string{"regular", "jokester", "sharpie", "genetic_freak"}

func (t Trait) String() string {
	if t < 0 || t >= traitCount {
		return "unknown"
	}
	return traitNames[t]
}

// Valid reports whether the trait index is in range.
func (t Trait) Valid() bool { return t >= 0 && t < traitCount }

// traitRarity weights the random trait draw. Values sum to 1.0.
var traitRarity = [traitCount]float64{
	TraitRegular:      0.70,
	TraitJokester:     0.15,
	TraitSharpie:      0.10,
	TraitGeneticFreak: 0.05,
}

// Skill groups the sharpie / genetic_freak traits trade off against each
// other.
var (
	shootingSkills = map[model.SkillName]struct{}{
		model.SkillShotAccuracy:  {},
		model.SkillShotPower:     {},
		model.SkillShotTechnique: {},
		model.SkillFreeKickAcc:   {},
		model.SkillSwerve:        {},
	}
	physicalSkills = map[model.SkillName]struct{}{
		model.SkillBalance:      {},
		model.SkillStamina:      {},
		model.SkillTopSpeed:     {},
		model.SkillAcceleration: {},
		model.SkillAgility:      {},
		model.SkillJump:         {},
	}
)

// Trait reweighting constants. The jokester inversion mirrors the
// position weight range [0.5, 2.0] around its midpoint.
const (
	weightFloor      = 0.5
	weightCeil       = 2.0
	traitBoost       = 1.5
	traitDampen      = 0.7
)

// reweight applies the trait to a position-derived skill weight.
func (t Trait) reweight(skill model.SkillName, weight float64) float64 {
	switch t {
	case TraitJokester:
		// Invert the weight distribution: the skills a position trains
		// least become the ones the jokester trains most.
		return weightFloor + weightCeil - weight
	case TraitSharpie:
		if _, ok := shootingSkills[skill]; ok {
			return weight * traitBoost
		}
		if _, ok := physicalSkills[skill]; ok {
			return weight * traitDampen
		}
	case TraitGeneticFreak:
		if _, ok := physicalSkills[skill]; ok {
			return weight * traitBoost
		}
		if _, ok := shootingSkills[skill]; ok {
			return weight * traitDampen
		}
	}
	return weight
}
