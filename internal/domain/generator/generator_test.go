package generator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pitchside/careersim/internal/domain/development"
	"github.com/pitchside/careersim/internal/domain/generator"
	"github.com/pitchside/careersim/internal/domain/model"
	"github.com/pitchside/careersim/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func newGenerator(seed int64) *generator.Generator {
	return generator.NewGenerator(generator.WithRand(rand.New(rand.NewSource(seed)))) //nolint:gosec // test determinism
}

func TestSelectNationality(t *testing.T) {
	Convey("Given a generator", t, func() {
		gen := newGenerator(1)

		Convey("When drawing many nationalities", func() {
			seen := map[string]int{}
			for i := 0; i < 2000; i++ {
				c := gen.SelectNationality()
				So(c.Name, ShouldNotBeEmpty)
				So(c.Skin, ShouldBeBetweenOrEqual, 1, 4)
				seen[c.Name]++
			}

			Convey("Then the weighted table produces a spread of countries", func() {
				So(len(seen), ShouldBeGreaterThan, 10)
			})
		})
	})
}

func TestGenerateName(t *testing.T) {
	Convey("Given a generator", t, func() {
		gen := newGenerator(2)

		Convey("When naming a player from a pooled nationality", func() {
			first, last := gen.GenerateName("Brazil")

			So(first, ShouldNotBeEmpty)
			So(last, ShouldNotBeEmpty)
		})

		Convey("When naming a player from an unpooled nationality", func() {
			first, last := gen.GenerateName("Atlantis")

			Convey("Then the English fallback pools apply", func() {
				So(first, ShouldNotBeEmpty)
				So(last, ShouldNotBeEmpty)
			})
		})
	})
}

func TestGenerateAttributes(t *testing.T) {
	Convey("Given a generator and no profile", t, func() {
		gen := newGenerator(3)

		Convey("When generating attributes for every youth age", func() {
			for age := 16; age <= 18; age++ {
				skills := gen.GenerateAttributes(age, model.PositionCF, nil)

				for _, name := range model.GradedSkills() {
					v, ok := skills.Get(name)
					So(ok, ShouldBeTrue)
					So(v, ShouldBeBetweenOrEqual, 1, 99)
				}
			}
		})

		Convey("Then unprofiled positions start with no special abilities", func() {
			skills := gen.GenerateAttributes(17, model.PositionCF, nil)
			for _, name := range model.BinarySkills() {
				v, _ := skills.Get(name)
				So(v, ShouldEqual, 0)
			}
		})

		Convey("Then older intakes start stronger on average", func() {
			So(generator.AgeFactor(16), ShouldEqual, 0.6)
			So(generator.AgeFactor(18), ShouldEqual, 0.75)
		})
	})

	Convey("Given a profile where the position majority holds a special ability", t, func() {
		gen := newGenerator(4)

		ref := &model.PlayerRecord{
			ID: "ref", Position: model.PositionCF, ClubID: 1,
			Skills: model.SkillSet{
				model.SkillAttack:  80,
				model.SkillScoring: 1,
			},
		}
		prof := profile.Compute(context.Background(), []*model.PlayerRecord{ref})

		Convey("When generating a player for that position", func() {
			skills := gen.GenerateAttributes(17, model.PositionCF, prof)

			Convey("Then the majority ability switches on", func() {
				v, _ := skills.Get(model.SkillScoring)
				So(v, ShouldEqual, 1)
			})
		})
	})
}

func TestNewPlayer(t *testing.T) {
	Convey("Given a generator", t, func() {
		gen := newGenerator(5)

		Convey("When creating fresh youth players", func() {
			for i := 0; i < 50; i++ {
				p := gen.NewPlayer(7, model.PositionSMF, nil)

				So(p.ID, ShouldNotBeEmpty)
				So(p.Name, ShouldNotBeEmpty)
				So(p.Nationality, ShouldNotBeEmpty)
				So(p.Age, ShouldBeBetweenOrEqual, 16, 18)
				So(p.ClubID, ShouldEqual, 7)
				So(p.Position, ShouldEqual, model.PositionSMF)
				So(p.HeightCM, ShouldBeBetweenOrEqual, 165, 197)
				So(p.WeightKG, ShouldBeGreaterThan, 0)
				So(p.StrongFoot, ShouldBeIn, "Right", "Left")

				flagged := 0
				for _, v := range p.PositionFlags {
					flagged += v
				}
				So(flagged, ShouldEqual, 1)
				So(p.PositionFlags[model.PositionSMF], ShouldEqual, 1)

				career, err := development.DecodeKey(p.DevelopmentKey)
				So(err, ShouldBeNil)
				So(career, ShouldNotBeNil)
				_, err = development.DecodeTrait(p.TraitKey)
				So(err, ShouldBeNil)
			}
		})

		Convey("When no position is requested", func() {
			seen := make(map[model.Position]bool)
			for i := 0; i < 200; i++ {
				p := gen.NewPlayer(7, "", nil)

				So(p.Position, ShouldBeIn, model.Positions())
				So(p.PositionFlags[p.Position], ShouldEqual, 1)
				seen[p.Position] = true
			}

			Convey("Then positions are drawn across the registered set", func() {
				So(len(seen), ShouldBeGreaterThan, 5)
			})
		})
	})
}

func TestNewReplacement(t *testing.T) {
	Convey("Given a retiring veteran with special abilities", t, func() {
		gen := newGenerator(6)

		retiring := &model.PlayerRecord{
			ID:          "vet-1",
			Name:        "Old Veteran",
			Nationality: "Italy",
			Age:         39,
			Position:    model.PositionCBT,
			ClubID:      12,
			Skills: model.SkillSet{
				model.SkillAttack:  55,
				model.SkillDefense: 92,
				model.SkillMarking: 1,
				model.SkillSliding: 1,
			},
		}

		ranges := model.ColumnRanges{
			model.SkillDefense: {Min: 30, Max: 85},
		}

		Convey("When generating replacements", func() {
			for i := 0; i < 50; i++ {
				regen := gen.NewReplacement(retiring, ranges)

				So(regen.ID, ShouldNotEqual, retiring.ID)
				So(regen.Age, ShouldBeBetweenOrEqual, 16, 18)
				So(regen.Nationality, ShouldEqual, "Italy")
				So(regen.Position, ShouldEqual, model.PositionCBT)
				So(regen.ClubID, ShouldEqual, 12)

				defense, ok := regen.Skills.Get(model.SkillDefense)
				So(ok, ShouldBeTrue)
				So(defense, ShouldBeBetweenOrEqual, 30, 85)

				attack, ok := regen.Skills.Get(model.SkillAttack)
				So(ok, ShouldBeTrue)
				So(attack, ShouldBeBetweenOrEqual, 1, 99)

				// Skills the retiree never had stay absent.
				_, ok = regen.Skills.Get(model.SkillGoalKeeping)
				So(ok, ShouldBeFalse)

				// Specials either inherit as 1 or drop to 0, never more.
				marking, ok := regen.Skills.Get(model.SkillMarking)
				So(ok, ShouldBeTrue)
				So(marking, ShouldBeIn, 0.0, 1.0)

				flagged := 0
				for _, v := range regen.PositionFlags {
					flagged += v
				}
				So(flagged, ShouldEqual, 1)
				So(regen.PositionFlags[model.PositionCBT], ShouldEqual, 1)
			}
		})

		Convey("When inheritance runs many times", func() {
			inherited := 0
			for i := 0; i < 300; i++ {
				regen := gen.NewReplacement(retiring, nil)
				if v, _ := regen.Skills.Get(model.SkillMarking); v == 1 {
					inherited++
				}
			}

			Convey("Then the ability passes down most of the time", func() {
				So(inherited, ShouldBeGreaterThan, 150)
				So(inherited, ShouldBeLessThan, 300)
			})
		})
	})
}

func TestSkinColorFor(t *testing.T) {
	Convey("Given the nationality table", t, func() {
		Convey("Then known countries map to their skin code", func() {
			So(generator.SkinColorFor("Nigeria"), ShouldBeBetweenOrEqual, 1, 4)
			So(generator.SkinColorFor("England"), ShouldBeBetweenOrEqual, 1, 4)
		})

		Convey("Then unknown countries fall back to a valid code", func() {
			So(generator.SkinColorFor("Atlantis"), ShouldBeBetweenOrEqual, 1, 4)
		})
	})
}
