package fairness_test

import (
	"testing"
	"time"

	"github.com/okian/lineup/internal/domain/fairness"
	"github.com/okian/lineup/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

// seasonFixture builds one player with a mixed history: two home events on
// the same weekend (2013 format) and one away event (2012 format).
func seasonFixture() (*model.Season, model.PlayerID) {
	s := model.NewSeason()
	p := s.AddPlayer("Alva", "p13-stark")

	h1 := s.AddEvent(date("2024-10-05 10:00"), date("2024-10-05 11:00"), "Skändalshallen", 2013)
	h2 := s.AddEvent(date("2024-10-06 12:00"), date("2024-10-06 13:00"), "Skändalshallen A", 2013)
	a1 := s.AddEvent(date("2024-10-12 10:00"), date("2024-10-12 11:00"), "Åkeshovshallen", 2012)

	s.Assign(h1, p)
	s.Assign(h2, p)
	s.Assign(a1, p)
	return s, p
}

func TestCounts(t *testing.T) {
	Convey("Given a player with a mixed history", t, func() {
		s, p := seasonFixture()

		Convey("Then the metric counts reflect the history", func() {
			So(fairness.GamesCount(s, p), ShouldEqual, 3)
			So(fairness.HomeGamesCount(s, p), ShouldEqual, 2)
			So(fairness.AwayGamesCount(s, p), ShouldEqual, 1)
		})

		Convey("Then the metric selector agrees with the named counts", func() {
			So(fairness.Count(s, p, fairness.Games), ShouldEqual, 3)
			So(fairness.Count(s, p, fairness.HomeGames), ShouldEqual, 2)
			So(fairness.Count(s, p, fairness.AwayGames), ShouldEqual, 1)
		})

		Convey("Then same-weekend pairs count unordered pairs", func() {
			So(fairness.SameWeekendPairCount(s, p), ShouldEqual, 1)
		})

		Convey("Then format counts split by capacity class", func() {
			So(fairness.FormatCount(s, p, 11), ShouldEqual, 2)
			So(fairness.FormatCount(s, p, 16), ShouldEqual, 1)
			So(fairness.FormatCount(s, p, 7), ShouldEqual, 0)
		})

		Convey("And a player with no history counts zero everywhere", func() {
			q := s.AddPlayer("Moa", "p13-mellan")
			So(fairness.GamesCount(s, q), ShouldEqual, 0)
			So(fairness.SameWeekendPairCount(s, q), ShouldEqual, 0)
		})
	})
}

func TestLeastBy(t *testing.T) {
	Convey("Given three players with 0, 1, and 1 games", t, func() {
		s := model.NewSeason()
		a := s.AddPlayer("Alva", "p13-stark")
		b := s.AddPlayer("Moa", "p13-stark")
		c := s.AddPlayer("Lova", "p13-stark")
		ev := s.AddEvent(date("2024-10-05 10:00"), date("2024-10-05 11:00"), "Skändalshallen", 2013)
		s.Assign(ev, b)
		s.Assign(ev, c)

		Convey("When selecting the least played", func() {
			least := fairness.LeastBy(s, []model.PlayerID{a, b, c}, fairness.Games)

			Convey("Then only the zero-game player remains", func() {
				So(least, ShouldResemble, []model.PlayerID{a})
			})
		})

		Convey("When the minimum is shared", func() {
			least := fairness.LeastBy(s, []model.PlayerID{b, c}, fairness.Games)

			Convey("Then all tied players remain in input order", func() {
				So(least, ShouldResemble, []model.PlayerID{b, c})
			})
		})

		Convey("When the candidate set is empty", func() {
			So(fairness.LeastBy(s, nil, fairness.Games), ShouldBeEmpty)
		})
	})
}
