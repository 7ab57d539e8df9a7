package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchside/careersim/internal/adapters/repository"
	"github.com/pitchside/careersim/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func storedPlayer(id string, clubID int, pos model.Position) *model.PlayerRecord {
	return &model.PlayerRecord{
		ID:       id,
		Name:     id,
		Age:      24,
		Position: pos,
		ClubID:   clubID,
		Skills: model.SkillSet{
			model.SkillAttack:  70,
			model.SkillDefense: 60,
		},
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an empty store with registered clubs", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithClubs(1, 2), repository.WithCapacity(16))

		Convey("Then the free agent pool is always registered", func() {
			So(store.HasClub(ctx, model.FreeAgentClubID), ShouldBeTrue)
			So(store.HasClub(ctx, 1), ShouldBeTrue)
			So(store.HasClub(ctx, 999), ShouldBeFalse)
		})

		Convey("When committing players", func() {
			err := store.CommitChunk(ctx, []*model.PlayerRecord{
				storedPlayer("a", 1, model.PositionCF),
				storedPlayer("b", 2, model.PositionGK),
				storedPlayer("fa", model.FreeAgentClubID, model.PositionCMF),
			}, nil)
			So(err, ShouldBeNil)

			Convey("Then the population and version reflect the commit", func() {
				So(store.Count(ctx), ShouldEqual, 3)
				So(store.Version(ctx), ShouldEqual, 1)
			})

			Convey("Then snapshot reads can exclude free agents", func() {
				So(store.Players(ctx, false), ShouldHaveLength, 3)
				So(store.Players(ctx, true), ShouldHaveLength, 2)
			})

			Convey("Then reads hand out independent copies", func() {
				p, err := store.Player(ctx, "a")
				So(err, ShouldBeNil)
				p.Skills.Set(model.SkillAttack, 99)

				again, err := store.Player(ctx, "a")
				So(err, ShouldBeNil)
				v, _ := again.Skills.Get(model.SkillAttack)
				So(v, ShouldEqual, 70)
			})

			Convey("Then club rosters filter by club", func() {
				roster, err := store.ClubPlayers(ctx, 1)
				So(err, ShouldBeNil)
				So(roster, ShouldHaveLength, 1)
				So(roster[0].ID, ShouldEqual, "a")
			})

			Convey("Then an unknown club errors", func() {
				_, err := store.ClubPlayers(ctx, 404)
				So(errors.Is(err, repository.ErrClubNotFound), ShouldBeTrue)
			})

			Convey("Then an unknown player errors", func() {
				_, err := store.Player(ctx, "ghost")
				So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
			})

			Convey("Then committing a player registers its club", func() {
				So(store.HasClub(ctx, 33), ShouldBeFalse)
				err := store.CommitChunk(ctx, []*model.PlayerRecord{storedPlayer("c", 33, model.PositionSS)}, nil)
				So(err, ShouldBeNil)
				So(store.HasClub(ctx, 33), ShouldBeTrue)
			})
		})

		Convey("When committing removals and upserts together", func() {
			So(store.CommitChunk(ctx, []*model.PlayerRecord{
				storedPlayer("old", 1, model.PositionCF),
			}, nil), ShouldBeNil)

			err := store.CommitChunk(ctx,
				[]*model.PlayerRecord{storedPlayer("young", 1, model.PositionCF)},
				[]string{"old"},
			)
			So(err, ShouldBeNil)

			Convey("Then the swap is atomic from the reader's view", func() {
				So(store.Count(ctx), ShouldEqual, 1)
				_, err := store.Player(ctx, "old")
				So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
				_, err = store.Player(ctx, "young")
				So(err, ShouldBeNil)
			})

			Convey("Then each commit bumps the version once", func() {
				So(store.Version(ctx), ShouldEqual, 2)
			})
		})

		Convey("When computing column ranges", func() {
			a := storedPlayer("a", 1, model.PositionCF)
			a.Skills.Set(model.SkillAttack, 95)
			b := storedPlayer("b", 2, model.PositionGK)
			b.Skills.Set(model.SkillAttack, 40)
			delete(b.Skills, model.SkillDefense)
			So(store.CommitChunk(ctx, []*model.PlayerRecord{a, b}, nil), ShouldBeNil)

			ranges := store.ColumnRanges(ctx)

			Convey("Then observed columns carry their min and max", func() {
				So(ranges[model.SkillAttack].Min, ShouldEqual, 40)
				So(ranges[model.SkillAttack].Max, ShouldEqual, 95)
				So(ranges[model.SkillDefense].Min, ShouldEqual, 60)
				So(ranges[model.SkillDefense].Max, ShouldEqual, 60)
			})

			Convey("Then never-observed columns are omitted", func() {
				_, ok := ranges[model.SkillGoalKeeping]
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When committing a nil or unidentified record", func() {
			err := store.CommitChunk(ctx, []*model.PlayerRecord{nil, {ID: ""}}, nil)
			So(err, ShouldBeNil)

			Convey("Then nothing is stored", func() {
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})
	})
}
