package main

import (
	"lumis/internal/contact/controller"
	contacthandler "lumis/internal/contact/handler"
	"lumis/internal/contact/service"
	"lumis/internal/contact/session"
	"lumis/internal/contact/validator"
	"lumis/internal/content"
	sitehandler "lumis/internal/site/handler"
	"lumis/internal/site/views"
	"lumis/pkg/app"
	"lumis/pkg/client"
	"lumis/pkg/config"
	"lumis/pkg/locale"
	"lumis/pkg/metrics"
	"lumis/pkg/sealer"

	"github.com/prometheus/client_golang/prometheus"
)

const ServiceName = "site"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Lumis site")

	siteMetrics := metrics.NewSiteMetrics(prometheus.DefaultRegisterer)
	backend := client.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout)

	store := initSessions(cfg, backend, siteMetrics)
	sessions := initSessionManager(cfg, store)

	pages, err := views.New()
	if err != nil {
		cfg.Log.Fatal("Failed to parse page templates", "error", err)
	}

	clock := controller.SystemClock()
	contentService := content.NewService(backend, cfg.Log, siteMetrics)

	contactHandler := contacthandler.NewContactHandler(
		sessions,
		clock,
		cfg.Location,
		locale.RegionForTimezone(cfg.SiteTimezone),
		cfg.Log,
		siteMetrics,
	)
	pageHandler := sitehandler.NewPageHandler(contentService, sessions, pages, clock, cfg.Location, cfg.Log)

	serverApp := app.NewApplication(cfg, siteMetrics, prometheus.DefaultGatherer)
	serverApp.SetApp(sitehandler.NewHealthHandler(backend, cfg.Log), pageHandler, contactHandler)
	serverApp.OnShutdown(store)
	serverApp.Run()
}

func initSessions(cfg *config.Config, backend *client.BackendClient, m *metrics.SiteMetrics) *session.Store {
	submissions := service.NewSubmissionService(backend, cfg.Log, m)
	formValidator := validator.NewFormValidator()

	store := session.NewStore(cfg.SessionTTL, func(flash *session.Flash) *controller.Controller {
		return controller.New(submissions, formValidator, flash,
			controller.WithLocation(cfg.Location),
			controller.WithAcknowledgeDelay(cfg.AcknowledgeDelay),
			controller.WithLogger(cfg.Log),
		)
	}, m)

	cfg.Log.Info("Contact form sessions initialized", "backend_url", cfg.BackendURL, "session_ttl", cfg.SessionTTL)
	return store
}

func initSessionManager(cfg *config.Config, store *session.Store) *session.Manager {
	sl, err := sealer.New(cfg.SessionKey)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize session sealer", "error", err)
	}
	return session.NewManager(store, sl, cfg.SessionSecure, cfg.Log)
}
