package handler

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"lumis/internal/contact/controller"
	contacterrors "lumis/internal/contact/errors"
	"lumis/internal/contact/session"
	"lumis/internal/contact/validator"
	apperrors "lumis/pkg/errors"
	httputil "lumis/pkg/http"
	"lumis/pkg/locale"
	"lumis/pkg/logger"
	"lumis/pkg/metrics"
	"lumis/pkg/model"
	"lumis/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

const contactAnchor = "/#contact"

const (
	outcomeSuccess    = "success"
	outcomeFailure    = "failure"
	outcomeValidation = "validation"
	outcomeInFlight   = "in_flight"
	outcomeAwaiting   = "awaiting_acknowledgement"
	outcomeBadInput   = "bad_input"
)

var (
	noticeInFlight = controller.Notification{
		Kind:        controller.NotificationError,
		Title:       "Your request is on its way",
		Description: "Please wait while we send it.",
	}
	noticeAwaiting = controller.Notification{
		Kind:        controller.NotificationSuccess,
		Title:       "Request already received",
		Description: "We'll get back to you within 24 hours.",
	}
)

type SubmitResponse struct {
	Result model.SubmissionResult `json:"result"`
	State  controller.Snapshot    `json:"state"`
}

type ContactHandler struct {
	sessions      *session.Manager
	clock         controller.Clock
	location      *time.Location
	defaultRegion string
	log           *logger.Logger
	metrics       *metrics.SiteMetrics
}

func NewContactHandler(
	sessions *session.Manager,
	clock controller.Clock,
	location *time.Location,
	defaultRegion string,
	log *logger.Logger,
	m *metrics.SiteMetrics,
) *ContactHandler {
	if clock == nil {
		clock = controller.SystemClock()
	}
	if location == nil {
		location = time.UTC
	}
	return &ContactHandler{
		sessions:      sessions,
		clock:         clock,
		location:      location,
		defaultRegion: defaultRegion,
		log:           log,
		metrics:       m,
	}
}

func (h *ContactHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/contact", h.Submit)
	router.POST("/contact/mode", h.SwitchMode)
	router.POST("/contact/services", h.ToggleService)
	router.GET("/contact/state", h.State)
}

// Submit binds the posted form onto the visitor's controller and submits it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := h.sessions.Load(w, r)
	c := sess.Controller

	req, err := bindSubmit(r)
	if err != nil {
		h.metrics.ObserveSubmission(string(c.Mode()), outcomeBadInput)
		h.reject(w, r, sess, apperrors.InvalidInput(err.Error()))
		return
	}

	region := locale.RegionForAcceptLanguage(r.Header.Get("Accept-Language"), h.defaultRegion)
	err = c.Edit(func(f *controller.Form) error {
		return h.apply(f, req, region)
	})
	if err != nil {
		if h.busy(w, r, sess, c.Mode(), err) {
			return
		}
		h.metrics.ObserveSubmission(string(c.Mode()), outcomeBadInput)
		h.reject(w, r, sess, apperrors.InvalidInput(err.Error()))
		return
	}

	mode := c.Mode()
	result, err := c.Submit(r.Context())
	if h.busy(w, r, sess, mode, err) {
		return
	}

	var vErr *validator.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.metrics.ObserveSubmission(string(mode), outcomeValidation)
		h.respond(w, r, apperrors.Validation(vErr.Title, map[string]any{
			"rule":        vErr.Rule,
			"fields":      vErr.Fields,
			"description": vErr.Description,
		}))

	case err != nil:
		h.log.Error("contact submit failed unexpectedly",
			"request_id", requestID(r),
			"session_id", sess.ID,
			"error", err,
		)
		h.respond(w, r, apperrors.Internal("Could not process the form", err))

	case !result.Success():
		h.metrics.ObserveSubmission(string(mode), outcomeFailure)
		h.respond(w, r, apperrors.SubmissionFailed("Something went wrong", nil).WithDetails(map[string]any{
			"reason":      result.Reason,
			"status_code": result.StatusCode,
		}))

	default:
		h.metrics.ObserveSubmission(string(mode), outcomeSuccess)
		h.log.Info("contact form submitted",
			"request_id", requestID(r),
			"session_id", sess.ID,
			"mode", mode,
		)
		if !httputil.WantsJSON(r) {
			http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
			return
		}
		h.writeJSON(w, http.StatusOK, SubmitResponse{Result: result, State: c.Snapshot()})
	}
}

// busy answers a submit that arrived while another one is outstanding or
// awaiting acknowledgement. It reports false for any other err.
func (h *ContactHandler) busy(w http.ResponseWriter, r *http.Request, sess *session.Session, mode model.FormMode, err error) bool {
	switch {
	case errors.Is(err, contacterrors.ErrSubmissionInFlight):
		h.metrics.ObserveSubmission(string(mode), outcomeInFlight)
		h.conflict(w, r, sess, err, noticeInFlight)
	case errors.Is(err, contacterrors.ErrAwaitingAcknowledgement):
		h.metrics.ObserveSubmission(string(mode), outcomeAwaiting)
		h.conflict(w, r, sess, err, noticeAwaiting)
	default:
		return false
	}
	return true
}

type fieldUpdate struct {
	key       string
	value     *string
	normalize func(string) string
}

// apply copies the normalized fields present in req onto f. Date and time
// are only taken in appointment mode. A date the calendar would not offer
// is dropped; a date that is not YYYY-MM-DD is an error and nothing is
// changed.
func (h *ContactHandler) apply(f *controller.Form, req submitRequest, region string) error {
	mode := f.Mode()
	if req.Mode != nil && strings.TrimSpace(*req.Mode) != "" {
		m, err := model.ParseFormMode(*req.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	scheduling := mode == model.ModeAppointment
	var date *string
	if scheduling && req.Date != nil {
		d := strings.TrimSpace(*req.Date)
		if d != "" {
			parsed, err := time.ParseInLocation(model.DateLayout, d, h.location)
			if err != nil {
				return fmt.Errorf("%w: %q", contacterrors.ErrInvalidDate, d)
			}
			if !controller.Selectable(parsed, h.clock.Now().In(h.location)) {
				d = ""
			}
		}
		date = &d
	}

	if err := f.SwitchMode(mode); err != nil {
		return err
	}

	fields := []fieldUpdate{
		{controller.FieldName, req.Name, sanitizer.NormalizeName},
		{controller.FieldEmail, req.Email, sanitizer.NormalizeEmail},
		{controller.FieldPhone, req.Phone, func(p string) string { return sanitizer.NormalizePhone(p, region) }},
		{controller.FieldDate, date, strings.TrimSpace},
		{controller.FieldReason, req.Reason, sanitizer.TrimAndNormalize},
		{controller.FieldMessage, req.Message, sanitizer.NormalizeText},
	}
	if scheduling {
		fields = append(fields, fieldUpdate{controller.FieldTime, req.Time, sanitizer.TrimAndNormalize})
	}

	for _, field := range fields {
		if field.value == nil {
			continue
		}
		if err := f.SetField(field.key, field.normalize(*field.value)); err != nil {
			return err
		}
	}

	if req.Services != nil {
		reconcileServices(f, sanitizer.NormalizeServices(*req.Services))
	}
	return nil
}

// reconcileServices toggles services until the selection equals want.
// Kept services stay in their original position; new ones are appended in
// the order posted.
func reconcileServices(f *controller.Form, want []string) {
	current := f.State().SelectedServices
	for _, name := range current {
		if !slices.Contains(want, name) {
			f.ToggleService(name)
		}
	}
	for _, name := range want {
		if !slices.Contains(current, name) {
			f.ToggleService(name)
		}
	}
}

func (h *ContactHandler) SwitchMode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := h.sessions.Load(w, r)

	req, err := bindMode(r)
	if err != nil {
		h.reject(w, r, sess, apperrors.InvalidInput(err.Error()))
		return
	}

	mode, err := model.ParseFormMode(req.Mode)
	if err == nil {
		err = sess.Controller.SwitchMode(mode)
	}
	if err != nil {
		h.reject(w, r, sess, apperrors.InvalidInput(contacterrors.ErrInvalidMode.Error()))
		return
	}

	h.snapshot(w, r, sess)
}

func (h *ContactHandler) ToggleService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := h.sessions.Load(w, r)

	req, err := bindService(r)
	if err != nil {
		h.reject(w, r, sess, apperrors.InvalidInput(err.Error()))
		return
	}

	name := sanitizer.TrimAndNormalize(req.Service)
	if name == "" {
		h.reject(w, r, sess, apperrors.InvalidInput("service is required"))
		return
	}
	sess.Controller.ToggleService(name)

	h.snapshot(w, r, sess)
}

// State reports the visitor's form. Reading never starts a session.
func (h *ContactHandler) State(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snap := controller.InitialSnapshot()
	if sess, ok := h.sessions.Lookup(r); ok {
		snap = sess.Controller.Snapshot()
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *ContactHandler) snapshot(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if !httputil.WantsJSON(r) {
		http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
		return
	}
	h.writeJSON(w, http.StatusOK, sess.Controller.Snapshot())
}

// respond sends appErr as JSON to API callers. Browsers are redirected back
// to the form, where the controller's notification is already queued.
func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, appErr *apperrors.AppError) {
	if !httputil.WantsJSON(r) {
		http.Redirect(w, r, contactAnchor, http.StatusSeeOther)
		return
	}
	if err := httputil.WriteError(w, appErr); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Contact", "operation", "WriteError", "error", err)
	}
}

func (h *ContactHandler) conflict(w http.ResponseWriter, r *http.Request, sess *session.Session, err error, notice controller.Notification) {
	if !httputil.WantsJSON(r) {
		sess.Flash.Notify(notice)
	}
	h.respond(w, r, apperrors.Conflict(err.Error()))
}

// reject reports input that could not be bound at all.
func (h *ContactHandler) reject(w http.ResponseWriter, r *http.Request, sess *session.Session, appErr *apperrors.AppError) {
	h.log.Warn("contact request rejected",
		"request_id", requestID(r),
		"path", r.URL.Path,
		"error", appErr.Message,
	)
	if !httputil.WantsJSON(r) {
		sess.Flash.Notify(controller.Notification{
			Kind:        controller.NotificationError,
			Title:       "Please check the form",
			Description: appErr.Message,
		})
	}
	h.respond(w, r, appErr)
}

func (h *ContactHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := httputil.WriteJSON(w, status, data); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Contact", "operation", "WriteJSON", "error", err)
	}
}
