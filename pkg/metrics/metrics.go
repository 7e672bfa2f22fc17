package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lumis"

// SiteMetrics exposes counters and histograms for the marketing site.
// A nil *SiteMetrics is valid and records nothing.
type SiteMetrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	submissionsTotal   *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	contentFallbacks   *prometheus.CounterVec
	activeSessions     prometheus.Gauge
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		httpRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submit attempts by mode and outcome",
		}, []string{"mode", "outcome"}),
		submissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submission_duration_seconds",
			Help:      "Latency of backend form submissions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		contentFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fallbacks_total",
			Help:      "Content loads served from built-in defaults",
		}, []string{"source"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "active_sessions",
			Help:      "Visitor sessions holding a form controller",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.submissionsTotal,
		m.submissionDuration,
		m.contentFallbacks,
		m.activeSessions,
	)
	return m
}

func (m *SiteMetrics) ObserveSubmission(mode, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(mode, outcome).Inc()
}

func (m *SiteMetrics) ObserveSubmissionLatency(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.submissionDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *SiteMetrics) ObserveContentFallback(source string) {
	if m == nil {
		return
	}
	m.contentFallbacks.WithLabelValues(source).Inc()
}

func (m *SiteMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
