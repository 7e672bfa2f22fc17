package service

import (
	"context"
	"slices"
	"time"

	"lumis/pkg/client"
	"lumis/pkg/logger"
	"lumis/pkg/metrics"
	"lumis/pkg/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("lumis/internal/contact/service")

type Backend interface {
	Submit(ctx context.Context, payload model.Payload) (*client.Response, error)
}

type SubmissionService struct {
	backend Backend
	log     *logger.Logger
	metrics *metrics.SiteMetrics
}

func NewSubmissionService(backend Backend, log *logger.Logger, m *metrics.SiteMetrics) *SubmissionService {
	if log == nil {
		log = logger.Discard()
	}
	return &SubmissionService{
		backend: backend,
		log:     log,
		metrics: m,
	}
}

// BuildPayload maps form state to the body of the endpoint of mode. Empty
// optional fields become null; services keep their selection order and are
// never null.
func BuildPayload(state model.ContactFormState, mode model.FormMode) model.Payload {
	services := slices.Clone(state.SelectedServices)
	if services == nil {
		services = []string{}
	}

	if mode == model.ModeAppointment {
		return model.AppointmentPayload{
			Name:     state.Name,
			Email:    state.Email,
			Phone:    optional(state.Phone),
			Date:     state.DateString(),
			Time:     state.Time,
			Services: services,
			Reason:   optional(state.Reason),
			Message:  optional(state.Message),
		}
	}

	return model.ContactPayload{
		Name:     state.Name,
		Email:    state.Email,
		Phone:    optional(state.Phone),
		Services: services,
		Reason:   optional(state.Reason),
		Message:  state.Message,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Submit posts payload exactly once. Transport errors and non-2xx replies
// are failures; nothing is retried.
func (s *SubmissionService) Submit(ctx context.Context, payload model.Payload) model.SubmissionResult {
	mode := payload.Mode()
	ctx, span := tracer.Start(ctx, "contact.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("contact.mode", string(mode)),
			attribute.String("http.route", mode.Endpoint()),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := s.backend.Submit(ctx, payload)
	s.metrics.ObserveSubmissionLatency(string(mode), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		s.log.Error("contact submission could not reach backend",
			"mode", mode,
			"endpoint", mode.Endpoint(),
			"error", err,
		)
		return model.Failed(err.Error(), 0)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if !resp.IsSuccess() {
		reason := client.GetErrorMessage(resp)
		span.SetStatus(codes.Error, reason)
		s.log.Warn("backend rejected contact submission",
			"mode", mode,
			"endpoint", mode.Endpoint(),
			"status", resp.StatusCode,
			"reason", reason,
		)
		return model.Failed(reason, resp.StatusCode)
	}

	s.log.Info("contact submission delivered", "mode", mode, "status", resp.StatusCode)
	return model.Succeeded(resp.StatusCode)
}

// Send builds the payload for state and submits it.
func (s *SubmissionService) Send(ctx context.Context, state model.ContactFormState, mode model.FormMode) model.SubmissionResult {
	return s.Submit(ctx, BuildPayload(state, mode))
}
