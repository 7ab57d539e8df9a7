package track_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pitchside/careersim/internal/domain/track"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryTracker(t *testing.T) {
	Convey("Given an empty tracker", t, func() {
		ctx := context.Background()
		tracker := track.NewInMemoryTracker()

		Convey("When recording a new id", func() {
			seen := tracker.SeenAndRecord(ctx, "player-1")

			Convey("Then it is reported as new", func() {
				So(seen, ShouldBeFalse)
				So(tracker.Size(), ShouldEqual, 1)
			})

			Convey("And recording it again reports it as seen", func() {
				So(tracker.SeenAndRecord(ctx, "player-1"), ShouldBeTrue)
				So(tracker.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording", func() {
			tracker.SeenAndRecord(ctx, "player-1")
			tracker.Unrecord(ctx, "player-1")

			Convey("Then the id can be processed again", func() {
				So(tracker.Size(), ShouldEqual, 0)
				So(tracker.SeenAndRecord(ctx, "player-1"), ShouldBeFalse)
			})

			Convey("And unrecording an unknown id is a no-op", func() {
				tracker.Unrecord(ctx, "ghost")
				So(tracker.Size(), ShouldEqual, 1)
			})
		})

		Convey("When resetting", func() {
			for i := 0; i < 10; i++ {
				tracker.SeenAndRecord(ctx, fmt.Sprintf("player-%d", i))
			}
			tracker.Reset(ctx)

			Convey("Then all progress is gone", func() {
				So(tracker.Size(), ShouldEqual, 0)
				So(tracker.SeenAndRecord(ctx, "player-0"), ShouldBeFalse)
			})
		})

		Convey("When many goroutines race on the same ids", func() {
			const goroutines = 16
			const ids = 100

			var wg sync.WaitGroup
			newCounts := make([]int, goroutines)
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < ids; i++ {
						if !tracker.SeenAndRecord(ctx, fmt.Sprintf("player-%d", i)) {
							newCounts[g]++
						}
					}
				}(g)
			}
			wg.Wait()

			Convey("Then each id is recorded exactly once", func() {
				total := 0
				for _, n := range newCounts {
					total += n
				}
				So(total, ShouldEqual, ids)
				So(tracker.Size(), ShouldEqual, ids)
			})
		})
	})
}
