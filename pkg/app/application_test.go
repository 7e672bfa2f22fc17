package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lumis/pkg/config"
	"lumis/pkg/logger"
	"lumis/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes func(*httprouter.Router)

func (f routes) RegisterRoutes(r *httprouter.Router) { f(r) }

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	t.Setenv(config.EnvRateLimitRequests, "2")

	cfg := config.FromEnv(logger.Discard())
	reg := prometheus.NewRegistry()
	a := NewApplication(cfg, metrics.NewSiteMetrics(reg), reg)

	health := routes(func(r *httprouter.Router) {
		r.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})
	})
	site := routes(func(r *httprouter.Router) {
		r.GET("/", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			_, _ = w.Write([]byte("landing"))
		})
		r.POST("/contact", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})
	})
	a.SetApp(health, site)
	t.Cleanup(a.rateLimiter.Stop)
	return a
}

func TestApplication_RoutesAndMetrics(t *testing.T) {
	h := newTestApplication(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "landing", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lumis_http_requests_total{method="GET",path="/",status_code="200"} 1`)
}

func TestApplication_RateLimitsPosts(t *testing.T) {
	h := newTestApplication(t).Handler()

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=a"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestApplication_RejectsUnsupportedContentType(t *testing.T) {
	h := newTestApplication(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
