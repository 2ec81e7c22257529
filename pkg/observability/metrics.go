package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sill/pkg/schema"
)

// Metrics bundles the Prometheus collectors published by sill.
type Metrics struct {
	checksTotal   *prometheus.CounterVec
	fieldFailures *prometheus.CounterVec
	checkDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them through the
// default promhttp handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sill_checks_total",
				Help: "Total number of environment checks, by outcome.",
			},
			[]string{"outcome"},
		),
		fieldFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sill_field_failures_total",
				Help: "Total number of per-field validation failures.",
			},
			[]string{"field"},
		),
		checkDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sill_check_duration_seconds",
				Help:    "Duration of a full environment check in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.checksTotal, m.fieldFailures, m.checkDuration)
	return m
}

// ObserveCheck records the outcome of one environment check.
func (m *Metrics) ObserveCheck(rep *schema.Report, elapsed time.Duration) {
	outcome := "ok"
	if !rep.OK() {
		outcome = "failed"
	}
	m.checksTotal.WithLabelValues(outcome).Inc()
	for _, name := range rep.Missing {
		m.fieldFailures.WithLabelValues(name).Inc()
	}
	for _, fe := range rep.Invalid {
		m.fieldFailures.WithLabelValues(fe.Field).Inc()
	}
	m.checkDuration.Observe(elapsed.Seconds())
}
