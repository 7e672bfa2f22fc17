package session

import (
	"net/http"

	"lumis/pkg/logger"
)

const CookieName = "lumis_session"

// TokenSealer hides session ids inside cookie values. *sealer.Sealer
// satisfies it.
type TokenSealer interface {
	Seal(value string) (string, error)
	Open(token string) (string, error)
}

// Manager binds sessions to browsers through a sealed cookie holding the
// session id.
type Manager struct {
	store  *Store
	sealer TokenSealer
	secure bool
	log    *logger.Logger
}

func NewManager(store *Store, s TokenSealer, secure bool, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Discard()
	}
	return &Manager{
		store:  store,
		sealer: s,
		secure: secure,
		log:    log,
	}
}

// Load returns the visitor's session, starting a new one (and setting its
// cookie) when the request carries none or an expired one. Only handlers
// that change form state call it.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := m.Lookup(r); ok {
		return sess
	}

	sess := m.store.Create()
	token, err := m.sealer.Seal(sess.ID)
	if err != nil {
		m.log.Error("failed to seal session cookie",
			"session_id", sess.ID,
			"path", r.URL.Path,
			"error", err,
		)
		return sess
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Lookup returns the visitor's live session without creating one.
func (m *Manager) Lookup(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}

	id, err := m.sealer.Open(cookie.Value)
	if err != nil {
		return nil, false
	}

	return m.store.Get(id)
}
