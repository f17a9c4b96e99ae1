package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{1, 2, 4})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{1, 2, 4}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording allocation outcomes", func() {
			Convey("Then it should record allocated events", func() {
				So(func() {
					RecordEventAllocated()
					RecordEventAllocated()
				}, ShouldNotPanic)
			})

			Convey("And it should record roster assignments", func() {
				So(func() {
					RecordPlayerAssigned()
					RecordPlayerAssigned()
					RecordPlayerAssigned()
				}, ShouldNotPanic)
			})

			Convey("And it should record quota underfills", func() {
				So(func() {
					RecordQuotaUnderfill()
				}, ShouldNotPanic)
			})

			Convey("And it should record cascade tiers", func() {
				So(func() {
					RecordCascadeTier("rested_balanced")
					RecordCascadeTier("least_played")
				}, ShouldNotPanic)
			})

			Convey("And it should record fill iterations", func() {
				So(func() {
					RecordFillIterations(1)
					RecordFillIterations(3)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating season scale gauges", func() {
			Convey("Then it should update player and event counts", func() {
				So(func() {
					UpdateSeasonPlayers(23)
					UpdateSeasonEvents(12)
				}, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then it should expose the custom registry", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
