package content

import (
	"context"

	"lumis/pkg/logger"
	"lumis/pkg/metrics"
	"lumis/pkg/model"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("lumis/internal/content")

const (
	SourceServices       = "services"
	SourceTestimonials   = "testimonials"
	SourceCaseStudies    = "case_studies"
	SourceBlogPosts      = "blog_posts"
	SourceAvailableTimes = "available_times"
)

const featuredServices = 4

type Backend interface {
	Services(ctx context.Context) ([]model.Service, error)
	Testimonials(ctx context.Context) ([]model.Testimonial, error)
	CaseStudies(ctx context.Context) ([]model.CaseStudy, error)
	BlogPosts(ctx context.Context) ([]model.BlogPost, error)
	AvailableTimes(ctx context.Context) ([]string, error)
}

// Page is everything the landing page shows besides the form.
type Page struct {
	Services     []model.Service
	Testimonials []model.Testimonial
	CaseStudies  []model.CaseStudy
	BlogPosts    []model.BlogPost
	TimeSlots    []string
	Reasons      []string
}

// FeaturedServices is the subset shown in the services section.
func (p Page) FeaturedServices() []model.Service {
	if len(p.Services) <= featuredServices {
		return p.Services
	}
	return p.Services[:featuredServices]
}

type Service struct {
	backend Backend
	log     *logger.Logger
	metrics *metrics.SiteMetrics
}

func NewService(backend Backend, log *logger.Logger, m *metrics.SiteMetrics) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		backend: backend,
		log:     log,
		metrics: m,
	}
}

// Load fetches every source concurrently. A source that fails or comes
// back empty is replaced by its built-in list; Load itself never fails.
func (s *Service) Load(ctx context.Context) Page {
	page := Page{Reasons: ReasonOptions}

	var g errgroup.Group
	g.Go(func() error {
		page.Services = fetch(ctx, s, SourceServices, s.backend.Services, DefaultServices)
		return nil
	})
	g.Go(func() error {
		page.Testimonials = fetch(ctx, s, SourceTestimonials, s.backend.Testimonials, DefaultTestimonials)
		return nil
	})
	g.Go(func() error {
		page.CaseStudies = fetch(ctx, s, SourceCaseStudies, s.backend.CaseStudies, DefaultCaseStudies)
		return nil
	})
	g.Go(func() error {
		page.BlogPosts = fetch(ctx, s, SourceBlogPosts, s.backend.BlogPosts, DefaultBlogPosts)
		return nil
	})
	g.Go(func() error {
		page.TimeSlots = fetch(ctx, s, SourceAvailableTimes, s.backend.AvailableTimes, DefaultTimeSlots)
		return nil
	})
	_ = g.Wait()

	return page
}

func fetch[T any](ctx context.Context, s *Service, source string, get func(context.Context) ([]T, error), defaults []T) []T {
	ctx, span := tracer.Start(ctx, "content.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("content.source", source))

	items, err := get(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		s.log.Warn("content source unavailable, using defaults", "source", source, "error", err)
	}
	if len(items) == 0 {
		span.SetAttributes(attribute.Bool("content.fallback", true))
		s.metrics.ObserveContentFallback(source)
		return defaults
	}
	return items
}
