package model_test

import (
	"testing"
	"time"

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

func TestSeasonArena(t *testing.T) {
	Convey("Given an empty season", t, func() {
		s := model.NewSeason()

		Convey("When adding players and events", func() {
			alva := s.AddPlayer("Alva", "p13-stark")
			ebba := s.AddPlayer("Ebba*", "p13-mellan")
			ev := s.AddEvent(date("2024-10-05 10:00"), date("2024-10-05 11:00"), "Skändalshallen", 2013)

			Convey("Then ids index the arenas", func() {
				So(s.Player(alva).Name, ShouldEqual, "Alva")
				So(s.Player(ebba).Pool, ShouldEqual, "p13-mellan")
				So(s.Event(ev).Year, ShouldEqual, 2013)
			})

			Convey("Then priority derives from the name suffix", func() {
				So(s.Player(alva).Priority(), ShouldBeFalse)
				So(s.Player(ebba).Priority(), ShouldBeTrue)
			})

			Convey("And assigning links both directions", func() {
				s.Assign(ev, alva)
				So(s.Rostered(ev, alva), ShouldBeTrue)
				So(s.Rostered(ev, ebba), ShouldBeFalse)
				So(s.Player(alva).History, ShouldResemble, []model.EventID{ev})
			})

			Convey("And locking marks the entry as locked", func() {
				s.Lock(ev, ebba)
				So(s.Rostered(ev, ebba), ShouldBeTrue)
				_, locked := s.Event(ev).Locked[ebba]
				So(locked, ShouldBeTrue)
				So(s.Player(ebba).History, ShouldResemble, []model.EventID{ev})
			})
		})

		Convey("When sorting players", func() {
			s.AddPlayer("Moa", "p13-mellan")
			s.AddPlayer("Alva", "p13-stark")
			s.AddPlayer("Lova", "p13-mellan")

			ids := s.SortedPlayers()

			Convey("Then iteration order is by name", func() {
				So(s.Player(ids[0]).Name, ShouldEqual, "Alva")
				So(s.Player(ids[1]).Name, ShouldEqual, "Lova")
				So(s.Player(ids[2]).Name, ShouldEqual, "Moa")
			})
		})
	})
}

func TestEventClassification(t *testing.T) {
	Convey("Given a season with the default home pattern", t, func() {
		s := model.NewSeason()
		home := s.AddEvent(date("2024-10-05 10:00"), date("2024-10-05 11:00"), "Skändalshallen", 2013)
		away := s.AddEvent(date("2024-10-12 12:00"), date("2024-10-12 13:00"), "Åkeshovshallen", 2013)

		Convey("Then venue matching classifies home and away", func() {
			So(s.IsHome(home), ShouldBeTrue)
			So(s.IsHome(away), ShouldBeFalse)
		})

		Convey("Then the default format table resolves capacity", func() {
			c, ok := s.Capacity(home)
			So(ok, ShouldBeTrue)
			So(c, ShouldEqual, 11)
		})

		Convey("Then keys derive from the start time", func() {
			So(s.Key(home), ShouldEqual, "2024-10-05 10:00")
		})
	})

	Convey("Given a season with a custom home pattern and strict keys", t, func() {
		s := model.NewSeason(
			model.WithHomePattern("^Ice Palace"),
			model.WithStrictKeys(true),
		)
		ev := s.AddEvent(date("2024-10-05 10:00"), date("2024-10-05 11:00"), "Ice Palace", 2013)

		Convey("Then the custom pattern applies", func() {
			So(s.IsHome(ev), ShouldBeTrue)
		})

		Convey("Then keys carry the venue", func() {
			So(s.Key(ev), ShouldEqual, "2024-10-05 10:00 @ Ice Palace")
		})
	})
}

func TestSameISOWeek(t *testing.T) {
	Convey("Given timestamps across week boundaries", t, func() {
		Convey("Then a Saturday and Sunday of one weekend share a week", func() {
			So(model.SameISOWeek(date("2024-10-05 10:00"), date("2024-10-06 15:00")), ShouldBeTrue)
		})

		Convey("Then consecutive weekends differ", func() {
			So(model.SameISOWeek(date("2024-10-05 10:00"), date("2024-10-12 10:00")), ShouldBeFalse)
		})

		Convey("Then the same week number in different years differs", func() {
			So(model.SameISOWeek(date("2023-10-07 10:00"), date("2024-10-05 10:00")), ShouldBeFalse)
		})
	})
}

func TestFormatTable(t *testing.T) {
	Convey("Given the default format table", t, func() {
		tbl := model.DefaultFormats()

		Convey("Then both season years are declared", func() {
			So(tbl[2012].Capacity, ShouldEqual, 16)
			So(tbl[2013].Capacity, ShouldEqual, 11)
			So(len(tbl[2012].Quotas), ShouldEqual, 4)
			So(len(tbl[2013].Quotas), ShouldEqual, 3)
		})

		Convey("Then quota sums match capacities", func() {
			for _, f := range tbl {
				sum := 0
				for _, q := range f.Quotas {
					sum += q.Count
				}
				So(sum, ShouldEqual, f.Capacity)
			}
		})

		Convey("Then capacities come out ascending and distinct", func() {
			So(tbl.Capacities(), ShouldResemble, []int{11, 16})
		})
	})
}
