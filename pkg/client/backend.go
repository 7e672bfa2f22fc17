package client

import (
	"context"
	"fmt"
	"time"

	"lumis/pkg/model"
)

const (
	PathRoot           = "/api/"
	PathTestimonials   = "/api/testimonials"
	PathCaseStudies    = "/api/case-studies"
	PathBlogPosts      = "/api/blog-posts"
	PathServices       = "/api/services"
	PathAvailableTimes = "/api/available-times"
)

// BackendClient talks to the site's REST backend.
type BackendClient struct {
	httpClient *HttpClient
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// Submit posts a form payload to the endpoint of its mode. Any response,
// including non-2xx ones, is returned to the caller for interpretation.
func (c *BackendClient) Submit(ctx context.Context, payload model.Payload) (*Response, error) {
	return c.httpClient.POST(ctx, payload.Mode().Endpoint(), payload)
}

func (c *BackendClient) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	return getList[model.Testimonial](ctx, c.httpClient, PathTestimonials)
}

func (c *BackendClient) CaseStudies(ctx context.Context) ([]model.CaseStudy, error) {
	return getList[model.CaseStudy](ctx, c.httpClient, PathCaseStudies)
}

func (c *BackendClient) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return getList[model.BlogPost](ctx, c.httpClient, PathBlogPosts)
}

func (c *BackendClient) Services(ctx context.Context) ([]model.Service, error) {
	return getList[model.Service](ctx, c.httpClient, PathServices)
}

func (c *BackendClient) AvailableTimes(ctx context.Context) ([]string, error) {
	resp, err := c.get(ctx, PathAvailableTimes)
	if err != nil {
		return nil, err
	}

	var envelope model.AvailableTimes
	if err := resp.DecodeJSON(&envelope); err != nil {
		return nil, fmt.Errorf("could not decode available times: %w", err)
	}
	return envelope.Times, nil
}

// Ping checks that the backend answers on its API root.
func (c *BackendClient) Ping(ctx context.Context) error {
	_, err := c.get(ctx, PathRoot)
	return err
}

func (c *BackendClient) get(ctx context.Context, path string) (*Response, error) {
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("GET %s: %s", path, resp.ToString())
	}
	return resp, nil
}

func getList[T any](ctx context.Context, c *HttpClient, path string) ([]T, error) {
	resp, err := c.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("GET %s: %s", path, resp.ToString())
	}

	var items []T
	if err := resp.DecodeJSON(&items); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return items, nil
}
