package handler

import (
	"net/http"
	"time"

	"lumis/internal/contact/controller"
	"lumis/internal/contact/session"
	"lumis/internal/content"
	"lumis/internal/site/views"
	"lumis/pkg/logger"
	"lumis/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const siteTitle = "Lumis | Illuminating the Future of IT"

type PageHandler struct {
	content  *content.Service
	sessions *session.Manager
	views    *views.Views
	clock    controller.Clock
	location *time.Location
	log      *logger.Logger
}

func NewPageHandler(
	contentService *content.Service,
	sessions *session.Manager,
	v *views.Views,
	clock controller.Clock,
	location *time.Location,
	log *logger.Logger,
) *PageHandler {
	if clock == nil {
		clock = controller.SystemClock()
	}
	if location == nil {
		location = time.UTC
	}
	return &PageHandler{
		content:  contentService,
		sessions: sessions,
		views:    v,
		clock:    clock,
		location: location,
		log:      log,
	}
}

func (h *PageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Landing)
	router.GET("/blog", h.ComingSoon)
	router.GET("/blog/:id", h.ComingSoon)
}

func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page := h.content.Load(r.Context())
	now := h.clock.Now().In(h.location)

	data := views.LandingData{
		Title:   siteTitle,
		Year:    now.Year(),
		Page:    page,
		Form:    controller.InitialSnapshot(),
		MinDate: firstSelectableDay(now).Format(model.DateLayout),
	}
	// Visitors get a session on their first form post, not on page views.
	if sess, ok := h.sessions.Lookup(r); ok {
		data.Form = sess.Controller.Snapshot()
		data.Notifications = sess.Flash.Drain()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Landing(w, data); err != nil {
		h.log.Error("failed to render page", "page", "landing", "error", err)
	}
}

func (h *PageHandler) ComingSoon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data := views.ComingSoonData{
		Title: "Coming Soon | Lumis",
		Year:  h.clock.Now().In(h.location).Year(),
	}
	if sess, ok := h.sessions.Lookup(r); ok {
		data.Notifications = sess.Flash.Drain()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.ComingSoon(w, data); err != nil {
		h.log.Error("failed to render page", "page", "coming_soon", "error", err)
	}
}

// firstSelectableDay is the earliest day the date picker offers after now.
func firstSelectableDay(now time.Time) time.Time {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	for i := 0; i < 7; i++ {
		day = day.AddDate(0, 0, 1)
		if controller.Selectable(day, now) {
			return day
		}
	}
	return day
}
