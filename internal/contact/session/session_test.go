package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumis/internal/contact/controller"
	"lumis/internal/contact/validator"
	"lumis/pkg/logger"
	"lumis/pkg/model"
	"lumis/pkg/sealer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okSubmitter struct{}

func (okSubmitter) Send(context.Context, model.ContactFormState, model.FormMode) model.SubmissionResult {
	return model.Succeeded(200)
}

func testFactory(flash *Flash) *controller.Controller {
	return controller.New(okSubmitter{}, validator.NewFormValidator(), flash)
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()
	s := NewStore(ttl, testFactory, nil)
	t.Cleanup(s.Stop)

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStore_CreateAndGet(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	sess := s.Create()
	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}

func TestStore_InstancesAreIndependent(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	a := s.Create()
	b := s.Create()
	require.NoError(t, a.Controller.SetField(controller.FieldName, "Jo"))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, b.Controller.State().Name)
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	s, now := newTestStore(t, 30*time.Minute)

	kept := s.Create()
	dropped := s.Create()

	*now = now.Add(20 * time.Minute)
	_, ok := s.Get(kept.ID)
	require.True(t, ok)

	*now = now.Add(20 * time.Minute)
	s.evictExpired()

	_, ok = s.Get(dropped.ID)
	assert.False(t, ok)
	_, ok = s.Get(kept.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestFlash_DrainEmpties(t *testing.T) {
	f := &Flash{}
	for i := 0; i < maxFlash+3; i++ {
		f.Notify(controller.Notification{Title: "n"})
	}

	assert.Len(t, f.Drain(), maxFlash)
	assert.Empty(t, f.Drain())
}

func TestFlash_ReceivesControllerNotifications(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	sess := s.Create()

	_, err := sess.Controller.Submit(context.Background())
	require.Error(t, err)

	items := sess.Flash.Drain()
	require.Len(t, items, 1)
	assert.Equal(t, "Please fill in required fields", items[0].Title)
}

func TestManager_CookieRoundTrip(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	sl, err := sealer.New(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	m := NewManager(s, sl, false, nil)

	rec := httptest.NewRecorder()
	first := m.Load(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, cookies[0].Value, first.ID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	second := m.Load(rec, req)

	assert.Same(t, first, second)
	assert.Empty(t, rec.Result().Cookies())
}

func TestManager_ForgedCookieStartsNewSession(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	sl, err := sealer.New(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	m := NewManager(s, sl, false, nil)

	existing := s.Create()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: existing.ID})

	got := m.Load(httptest.NewRecorder(), req)
	assert.NotEqual(t, existing.ID, got.ID)

	_, ok := m.Lookup(req)
	assert.False(t, ok)
}

type failingSealer struct{}

func (failingSealer) Seal(string) (string, error) { return "", errors.New("entropy unavailable") }
func (failingSealer) Open(string) (string, error) { return "", sealer.ErrInvalidToken }

func TestManager_SealFailureIsLogged(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	var buf bytes.Buffer
	m := NewManager(s, failingSealer{}, false, logger.New(logger.Config{Level: logger.ERROR, Output: &buf}))

	rec := httptest.NewRecorder()
	sess := m.Load(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))

	require.NotNil(t, sess)
	assert.Empty(t, rec.Result().Cookies())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "failed to seal session cookie", record["msg"])
	assert.Equal(t, sess.ID, record["session_id"])
	assert.Equal(t, "/contact", record["path"])
	assert.Equal(t, "entropy unavailable", record["error"])
}
