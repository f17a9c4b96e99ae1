package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/lineup/internal/adapters/schedule"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
)

const seasonDoc = `pools:
  p13-stark: [Alva, Ebba*, Klara]
  p13-mellan: [Stina, Moa, Lova, Nora, Tuva, Elsa, Vera, Maja, Saga, Liv]
  p13-junior: [Iris, Juni, Lykke]
events:
  - start: 2024-10-05T10:00:00+02:00
    end: 2024-10-05T11:00:00+02:00
    venue: Skändalshallen
    year: 2013
  - start: 2024-10-12T10:00:00+02:00
    end: 2024-10-12T11:00:00+02:00
    venue: Åkeshovshallen
    year: 2013
blackouts:
  Stina: ["2024-10-05 10:00"]
`

func writeSeason(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.yaml")
	if err := os.WriteFile(path, []byte(seasonDoc), 0o600); err != nil {
		t.Fatalf("write season file: %v", err)
	}
	return path
}

func TestServiceRun(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	Convey("Given a season file and the default configuration", t, func() {
		cfg := config.New()
		cfg.SeasonFile = writeSeason(t)

		var buf bytes.Buffer
		svc := service.New(cfg, service.WithOutput(&buf))

		Convey("When running the allocation", func() {
			res, err := svc.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then every roster is filled to its format capacity", func() {
				s := svc.Season()
				So(s, ShouldNotBeNil)
				for i := range s.Events {
					So(len(s.Event(model.EventID(i)).Roster), ShouldEqual, 11)
				}
			})

			Convey("Then the result carries a run id and one decision per seat", func() {
				So(res.RunID, ShouldNotBeEmpty)
				So(len(res.Decisions), ShouldEqual, 22)
				So(len(res.Underfills), ShouldEqual, 0)
			})

			Convey("Then the blacked-out player sits out the blocked event", func() {
				s := svc.Season()
				for _, id := range s.Event(0).Roster {
					So(s.Player(id).Name, ShouldNotEqual, "Stina")
				}
			})

			Convey("Then the report is written to the configured output", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "PLAYER")
				So(out, ShouldContainSubstring, "Skändalshallen")
			})
		})

		Convey("When running twice with the same seed", func() {
			res1, err := svc.Run(context.Background())
			So(err, ShouldBeNil)

			svc2 := service.New(cfg, service.WithOutput(&bytes.Buffer{}))
			res2, err := svc2.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the decision traces are identical", func() {
				So(res2.Decisions, ShouldResemble, res1.Decisions)
			})
		})
	})

	Convey("Given a configuration pointing at a missing season file", t, func() {
		cfg := config.New()
		cfg.SeasonFile = filepath.Join(t.TempDir(), "missing.yaml")

		svc := service.New(cfg, service.WithOutput(&bytes.Buffer{}))

		Convey("When running the allocation", func() {
			res, err := svc.Run(context.Background())

			Convey("Then the load error is surfaced and no season is retained", func() {
				So(errors.Is(err, schedule.ErrLoadSeason), ShouldBeTrue)
				So(res, ShouldBeNil)
				So(svc.Season(), ShouldBeNil)
			})
		})
	})
}
