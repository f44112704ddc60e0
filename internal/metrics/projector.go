package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	projectionAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filtertrace",
		Subsystem: "projector",
		Name:      "applied_total",
		Help:      "Count of unit rows projected into the cache after ledger commits.",
	}, []string{"event_type"})
	projectionDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filtertrace",
		Subsystem: "projector",
		Name:      "dropped_total",
		Help:      "Count of projections abandoned because the cache was unavailable.",
	}, []string{"event_type"})
	reconcileRepairsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filtertrace",
		Subsystem: "projector",
		Name:      "reconcile_repairs_total",
		Help:      "Count of cache rows rewritten because a read found them stale.",
	})
	eventFlushDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filtertrace",
		Subsystem: "projector",
		Name:      "event_flush_dropped_total",
		Help:      "Count of event rows lost when a buffered flush failed.",
	})
)

// Projector tracks cache projection outcomes.
type Projector struct{}

// NewProjector creates a Projector metrics collector.
func NewProjector() *Projector {
	return &Projector{}
}

// ProjectionApplied records unit rows written to the cache for one transaction.
func (m Projector) ProjectionApplied(eventType string, units int) {
	projectionAppliedTotal.WithLabelValues(eventType).Add(float64(units))
}

// ProjectionDropped records a transaction whose cache projection failed.
func (m Projector) ProjectionDropped(eventType string) {
	projectionDroppedTotal.WithLabelValues(eventType).Inc()
}

// ReadRepair records a stale cache row overwritten from a ledger read.
func (m Projector) ReadRepair() {
	reconcileRepairsTotal.Inc()
}

// FlushDropped records event rows lost by a failed buffered flush.
func (m Projector) FlushDropped(count int) {
	eventFlushDroppedTotal.Add(float64(count))
}
