package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/metrics"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the dashboard sessions. The dataset store is shared by every
// session; all other state is private to its binder.
type Manager struct {
	store    *dataset.Store
	observer Observer
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Binder
}

// NewManager creates a session manager over a loaded store.
func NewManager(store *dataset.Store, observer Observer) *Manager {
	return &Manager{
		store:    store,
		observer: observer,
		now:      time.Now,
		sessions: make(map[string]*Binder),
	}
}

// Store returns the shared dataset store.
func (m *Manager) Store() *dataset.Store {
	return m.store
}

// Create opens a new session in its initial state.
func (m *Manager) Create() *Binder {
	b := NewDashboard(uuid.NewString(), m.store, m.observer)
	b.now = m.now
	b.Touch()

	m.mu.Lock()
	m.sessions[b.ID()] = b
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	slog.Debug("Session created", "session", b.ID(), "active", n)
	return b
}

// Get returns the session with id and marks it active.
func (m *Manager) Get(id string) (*Binder, error) {
	m.mu.RLock()
	b, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	b.Touch()
	return b, nil
}

// Delete ends a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	metrics.SessionsActive.Set(float64(n))
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PruneIdle removes sessions inactive for longer than idle and returns how
// many were removed.
func (m *Manager) PruneIdle(idle time.Duration) int {
	threshold := m.now().Add(-idle)

	m.mu.Lock()
	removed := 0
	for id, b := range m.sessions {
		if b.LastActive().Before(threshold) {
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		metrics.SessionsActive.Set(float64(n))
		metrics.SessionsPruned.Add(float64(removed))
	}
	return removed
}
