package session

import (
	"sync"
	"time"

	"lumis/internal/contact/controller"
	"lumis/pkg/metrics"

	"github.com/google/uuid"
)

const cleanupInterval = time.Minute

// Session is one visitor's form instance and its pending notifications.
type Session struct {
	ID         string
	Controller *controller.Controller
	Flash      *Flash

	lastSeen time.Time
}

// Factory builds the controller of a new session, wired to its flash queue.
type Factory func(flash *Flash) *controller.Controller

// Store keeps sessions in memory and drops them after ttl of inactivity.
// Dropping a session discards its form instance.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	factory  Factory
	now      func() time.Time
	metrics  *metrics.SiteMetrics
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewStore(ttl time.Duration, factory Factory, m *metrics.SiteMetrics) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		metrics:  m,
		stopCh:   make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Get returns the live session id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		s.dropLocked(id)
		return nil, false
	}

	sess.lastSeen = now
	return sess, true
}

func (s *Store) Create() *Session {
	flash := &Flash{}
	sess := &Session{
		ID:         uuid.NewString(),
		Controller: s.factory(flash),
		Flash:      flash,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess.lastSeen = s.now()
	s.sessions[sess.ID] = sess
	s.metrics.SetActiveSessions(len(s.sessions))
	return sess
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) dropLocked(id string) {
	if sess, ok := s.sessions[id]; ok {
		sess.Controller.Close()
		delete(s.sessions, id)
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}

func (s *Store) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			s.dropLocked(id)
		}
	}
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends the cleanup goroutine and closes every form instance.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		s.mu.Lock()
		defer s.mu.Unlock()
		for id := range s.sessions {
			s.dropLocked(id)
		}
	})
}
