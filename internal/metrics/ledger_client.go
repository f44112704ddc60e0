package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filtertrace",
		Subsystem: "ledger_client",
		Name:      "requests_total",
		Help:      "Count of ledger submit and evaluate calls.",
	}, []string{"operation", "status"})
	ledgerClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "filtertrace",
		Subsystem: "ledger_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of ledger submit and evaluate calls.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"operation", "status"})
)

// LedgerClient tracks metrics for ledger transactions.
type LedgerClient struct{}

// NewLedgerClient creates a LedgerClient metrics collector.
func NewLedgerClient() *LedgerClient {
	return &LedgerClient{}
}

// Observe records duration and status of a ledger call.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerClientRequestsTotal.WithLabelValues(operation, status).Inc()
	ledgerClientRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
