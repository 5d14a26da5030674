// Package session holds the per-visitor state the storefront mutates: the
// cart, checkout options and language.
package session

import (
	"sync"
	"time"

	"dira-storefront/cart"
	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/pricing"

	"github.com/google/uuid"
)

// Session is one visitor's state. Callers must hold the session through
// Do so mutations stay serialized.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Options  pricing.Options
	Language i18n.Language

	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(id string, lang i18n.Language, now time.Time) *Session {
	return &Session{
		ID:       id,
		Cart:     cart.New(),
		Options:  pricing.Options{DeliveryMethod: models.DeliveryHome},
		Language: lang,
		lastSeen: now,
	}
}

// Do runs fn with exclusive access to the session
func (s *Session) Do(fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Manager owns every live session
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewManager returns a manager that forgets sessions idle for longer than
// idleTTL. Zero keeps them for the life of the process.
func NewManager(idleTTL time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// NewID returns a fresh session id
func NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, creating an empty one when the id is unknown
// (for example after a restart). The second result reports creation.
func (m *Manager) Get(id string, lang i18n.Language) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.sessions[id]; ok {
		s.lastSeen = now
		return s, false
	}
	s := newSession(id, lang, now)
	m.sessions[id] = s
	return s, true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops idle sessions and returns how many were removed
func (m *Manager) Sweep() int {
	if m.idleTTL <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idleTTL)
	removed := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
