// Package metrics provides Prometheus metrics for the lineup allocation
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for allocation runs.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Allocation outcome metrics
	eventsAllocated prometheus.Counter
	playersAssigned prometheus.Counter
	quotaUnderfills prometheus.Counter
	cascadeTierUsed *prometheus.CounterVec
	fillIterations  prometheus.Histogram

	// Season scale metrics
	seasonPlayers prometheus.Gauge
	seasonEvents  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lineup",
		subsystem:        "allocator",
		histogramBuckets: []float64{1, 2, 3, 5, 8, 13, 21},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.eventsAllocated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_allocated_total",
		Help:      "Total number of events whose rosters were filled",
	})

	m.playersAssigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_assigned_total",
		Help:      "Total number of newly selected roster assignments",
	})

	m.quotaUnderfills = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quota_underfills_total",
		Help:      "Total number of pool quotas left short of candidates",
	})

	m.cascadeTierUsed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cascade_tier_used_total",
			Help:      "Selections by winning cascade tier (fairness pressure indicator)",
		},
		[]string{"tier"},
	)

	m.fillIterations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fill_iterations",
		Help:      "Histogram of cascade passes needed per quota fill",
		Buckets:   m.histogramBuckets,
	})

	m.seasonPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_players",
		Help:      "Total number of players in the season",
	})

	m.seasonEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "season_events",
		Help:      "Total number of events in the season",
	})
}

// RecordEventAllocated increments the allocated events counter.
func RecordEventAllocated() {
	globalManager.eventsAllocated.Inc()
}

// RecordPlayerAssigned increments the roster assignment counter.
func RecordPlayerAssigned() {
	globalManager.playersAssigned.Inc()
}

// RecordQuotaUnderfill increments the underfill counter.
func RecordQuotaUnderfill() {
	globalManager.quotaUnderfills.Inc()
}

// RecordCascadeTier increments the selection counter for the winning tier.
func RecordCascadeTier(tier string) {
	globalManager.cascadeTierUsed.WithLabelValues(tier).Inc()
}

// RecordFillIterations observes how many cascade passes one quota fill took.
func RecordFillIterations(iterations float64) {
	globalManager.fillIterations.Observe(iterations)
}

// UpdateSeasonPlayers sets the season player count gauge.
func UpdateSeasonPlayers(count int) {
	globalManager.seasonPlayers.Set(float64(count))
}

// UpdateSeasonEvents sets the season event count gauge.
func UpdateSeasonEvents(count int) {
	globalManager.seasonEvents.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
