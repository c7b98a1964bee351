package metrics

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics holds the collectors for exchange rate synchronization.
// A nil *SyncMetrics is valid and records nothing.
type SyncMetrics struct {
	// Runs by outcome (completed, nothing_to_sync, failed)
	RunsTotal *prometheus.CounterVec

	// Years by status (synced, skipped_finalized, fetch_failed)
	YearsTotal *prometheus.CounterVec

	// Individual rates by result (upserted, skipped_finalized, failed)
	RatesTotal *prometheus.CounterVec

	// Provider round trips by result (ok, request_error, status_error, decode_error)
	ProviderRequestDuration *prometheus.HistogramVec

	LastSuccessTimestamp prometheus.Gauge
}

// NewSyncMetrics registers the sync collectors with reg.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_sync_runs_total",
				Help: "Exchange rate sync runs by outcome",
			},
			[]string{"outcome"},
		),
		YearsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_sync_years_total",
				Help: "Years visited by exchange rate sync runs by status",
			},
			[]string{"status"},
		),
		RatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rate_sync_rates_total",
				Help: "Monthly rates handled by exchange rate sync runs by result",
			},
			[]string{"result"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_provider_request_duration_seconds",
				Help:    "Latency of exchange rate provider requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		LastSuccessTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchange_rate_sync_last_success_timestamp_seconds",
				Help: "Unix time of the last exchange rate sync run that completed",
			},
		),
	}
}

// ObserveProviderRequest records one provider round trip.
func (m *SyncMetrics) ObserveProviderRequest(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequestDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// ObserveYear records the outcome of one year.
func (m *SyncMetrics) ObserveYear(y domain.YearSyncResult) {
	if m == nil {
		return
	}
	m.YearsTotal.WithLabelValues(string(y.Status)).Inc()
	m.RatesTotal.WithLabelValues("upserted").Add(float64(y.Upserted))
	m.RatesTotal.WithLabelValues("skipped_finalized").Add(float64(y.SkippedFinalized))
	m.RatesTotal.WithLabelValues("failed").Add(float64(y.Failed))
}

// ObserveRun records the end of a run. A nil report means the run failed.
func (m *SyncMetrics) ObserveRun(report *domain.SyncReport) {
	if m == nil {
		return
	}
	if report == nil {
		m.RunsTotal.WithLabelValues("failed").Inc()
		return
	}
	m.RunsTotal.WithLabelValues(string(report.Outcome)).Inc()
	m.LastSuccessTimestamp.Set(float64(report.FinishedAt.Unix()))
}
