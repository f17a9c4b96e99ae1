package config_test

import (
	"testing"

	"github.com/okian/lineup/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.SeasonFile, convey.ShouldEqual, "season.yaml")
			convey.So(cfg.HomeVenue, convey.ShouldEqual, `(?i)^sk.ndalshallen`)
			convey.So(cfg.Seed, convey.ShouldEqual, 42)
			convey.So(cfg.StrictKeys, convey.ShouldBeFalse)
			convey.So(len(cfg.Formats), convey.ShouldEqual, 2)
		})
	})
}

func TestConfig_FormatTable(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.New()

		convey.Convey("When converting to the domain format table", func() {
			table := cfg.FormatTable()

			convey.Convey("Then both formats carry their capacity and quota order", func() {
				convey.So(len(table), convey.ShouldEqual, 2)
				convey.So(table[2012].Capacity, convey.ShouldEqual, 16)
				convey.So(table[2013].Capacity, convey.ShouldEqual, 11)
				convey.So(len(table[2013].Quotas), convey.ShouldEqual, 3)
				convey.So(table[2013].Quotas[0].Pool, convey.ShouldEqual, "p13-stark")
				convey.So(table[2013].Quotas[0].Count, convey.ShouldEqual, 2)
				convey.So(table[2013].Quotas[1].Pool, convey.ShouldEqual, "p13-mellan")
				convey.So(table[2013].Quotas[1].Count, convey.ShouldEqual, 7)
			})
		})
	})
}
