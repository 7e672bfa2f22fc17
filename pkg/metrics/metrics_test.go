package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSiteMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)

	m.ObserveSubmission("appointment", "success")
	m.ObserveSubmission("appointment", "success")
	m.ObserveSubmission("contact", "validation")
	m.ObserveSubmissionLatency("contact", 120*time.Millisecond)
	m.ObserveContentFallback("services")
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("appointment", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("contact", "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contentFallbacks.WithLabelValues("services")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
}

func TestSiteMetricsNilSafe(t *testing.T) {
	var m *SiteMetrics
	m.ObserveSubmission("contact", "success")
	m.ObserveSubmissionLatency("contact", time.Second)
	m.ObserveContentFallback("testimonials")
	m.SetActiveSessions(1)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddlewareRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/", "/blog/how-agents-work", "/blog/other", "/missing", "/metrics"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/blog/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/missing", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsInFlight))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/contact/state", normalizePath("/contact/state"))
	assert.Equal(t, "/x/{id}", normalizePath("/x/5b0c1c1e-6f7a-4d1b-9a38-0e3f3f6f9b2a"))
	assert.Equal(t, "/blog/{id}", normalizePath("/blog/1"))
}
