package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics of a replay run.
type Metrics struct {
	gatherer prometheus.Gatherer

	// Event metrics
	EventsProcessed *prometheus.CounterVec
	ReadErrors      prometheus.Counter

	// Account metrics
	Accounts       prometheus.Gauge
	LockedAccounts prometheus.Gauge

	// Run metrics
	ReplayDuration prometheus.Histogram
}

// New creates all metrics and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,

		// Event metrics
		EventsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txledger_events_processed_total",
				Help: "Total ledger events applied by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		ReadErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "txledger_read_errors_total",
			Help: "Total fatal errors reading the event log",
		}),

		// Account metrics
		Accounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txledger_accounts",
			Help: "Number of accounts known at the end of the replay",
		}),
		LockedAccounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txledger_locked_accounts",
			Help: "Number of accounts locked by a chargeback",
		}),

		// Run metrics
		ReplayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txledger_replay_duration_seconds",
			Help:    "Duration of a full replay",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, for collection by node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.gatherer)
}
