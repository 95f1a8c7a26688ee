package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the dashboard's prometheus collectors
type Metrics struct {
	Interactions    *prometheus.CounterVec
	FilteredRecords prometheus.Histogram
	LoginAttempts   *prometheus.CounterVec
	Exports         *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)
	m.gatherer = reg
	return m
}

// NewWith registers the collectors on reg
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		Interactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "drugdash_interactions_total",
			Help: "Dashboard page renders by page.",
		}, []string{"page"}),
		FilteredRecords: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "drugdash_filtered_records",
			Help:    "Size of the filtered record set per interaction.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "drugdash_login_attempts_total",
			Help: "Export gate login attempts by result.",
		}, []string{"result"}),
		Exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "drugdash_exports_total",
			Help: "Filtered data downloads by format.",
		}, []string{"format"}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// Handler serves the registry the collectors were registered on
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveInteraction records one render of page over n filtered records
func (m *Metrics) ObserveInteraction(page string, n int) {
	if m == nil {
		return
	}
	m.Interactions.WithLabelValues(page).Inc()
	if n >= 0 {
		m.FilteredRecords.Observe(float64(n))
	}
}

// ObserveLogin records a login attempt outcome
func (m *Metrics) ObserveLogin(result string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(result).Inc()
}

// ObserveExport records a download
func (m *Metrics) ObserveExport(format string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format).Inc()
}
