package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumis/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendClient_SubmitRoutesByMode(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL+"/", time.Second)

	resp, err := c.Submit(context.Background(), model.AppointmentPayload{
		Name: "Jo", Email: "jo@x.com", Date: "2026-03-04", Time: "09:00 AM", Services: []string{},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "/api/appointments", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "2026-03-04", gotBody["date"])

	_, err = c.Submit(context.Background(), model.ContactPayload{Name: "Jo", Email: "jo@x.com", Message: "Hi", Services: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "/api/contact", gotPath)
}

func TestBackendClient_ContentLists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/services", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"svc1","name":"AI Agent Building","description":"d","icon":"brain"}]`))
	})
	mux.HandleFunc("/api/available-times", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"times":["09:00 AM","10:00 AM"]}`))
	})
	mux.HandleFunc("/api/testimonials", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewBackendClient(srv.URL, time.Second)
	ctx := context.Background()

	services, err := c.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "brain", services[0].Icon)

	times, err := c.AvailableTimes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM"}, times)

	_, err = c.Testimonials(ctx)
	assert.Error(t, err)
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", 404, `{"detail":"Case study not found"}`, "Case study not found"},
		{"detail list", 422, `{"detail":[{"msg":"value is not a valid email address"}]}`, "value is not a valid email address"},
		{"message", 400, `{"message":"bad"}`, "bad"},
		{"not json", 502, `<html>bad gateway</html>`, "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{Response: &http.Response{StatusCode: tt.status}, Body: []byte(tt.body)}
			assert.Equal(t, tt.want, GetErrorMessage(resp))
		})
	}
}
