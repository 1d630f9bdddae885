// Package metrics exposes scheduler outcomes as Prometheus metrics.
package metrics

import (
	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tabsweep"

var _ ports.EvictionObserver = (*Observer)(nil)

// Observer records eviction outcomes on its own registry.
type Observer struct {
	registry *prometheus.Registry

	ticks            prometheus.Counter
	openTabs         prometheus.Gauge
	candidates       prometheus.Gauge
	warnings         prometheus.Counter
	evictions        prometheus.Counter
	cancelled        prometheus.Counter
	staleTargets     prometheus.Counter
	archiveSwept     prometheus.Counter
	archiveRemaining prometheus.Gauge
}

func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Observer{
		registry: reg,
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of completed eviction runs",
		}),
		openTabs: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_tabs",
			Help:      "Open tabs seen by the last eviction run",
		}),
		candidates: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "eviction_candidates",
			Help:      "Tabs eligible for eviction in the last run",
		}),
		warnings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Warnings emitted before closing a tab",
		}),
		evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Tabs closed for inactivity",
		}),
		cancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_cancelled_total",
			Help:      "Pending closes cancelled by activity, pinning or closing",
		}),
		staleTargets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_targets_total",
			Help:      "Eviction targets that had already disappeared from the pool",
		}),
		archiveSwept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_swept_total",
			Help:      "Closed-tab entries removed by retention cleanup",
		}),
		archiveRemaining: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "archive_entries",
			Help:      "Closed-tab entries left after the last cleanup",
		}),
	}
}

// Registry returns the registry the observer's metrics live on.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

func (o *Observer) TickCompleted(openTabs, candidates int) {
	o.ticks.Inc()
	o.openTabs.Set(float64(openTabs))
	o.candidates.Set(float64(candidates))
}

func (o *Observer) TabWarned(domain.TabID) {
	o.warnings.Inc()
}

func (o *Observer) TabEvicted(domain.TabID) {
	o.evictions.Inc()
}

func (o *Observer) WarningCancelled(domain.TabID) {
	o.cancelled.Inc()
}

func (o *Observer) StaleTarget(domain.TabID) {
	o.staleTargets.Inc()
}

func (o *Observer) ArchiveSwept(removed, remaining int) {
	o.archiveSwept.Add(float64(removed))
	o.archiveRemaining.Set(float64(remaining))
}
