package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the export gate state of one browser session
type State struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	AwaitingLogin bool      `json:"awaiting_login"`
	CreatedAt     time.Time `json:"created_at"`
}

// Manager holds session states in memory, keyed by an opaque id
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Create starts a new unauthenticated session
func (m *Manager) Create() State {
	s := &State{ID: uuid.NewString(), CreatedAt: time.Now()}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return *s
}

// Get returns a copy of the state for id
func (m *Manager) Get(id string) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return State{}, false
	}
	return *s, true
}

// RequestDownload marks the session as waiting for credentials. An
// authenticated session is left as is.
func (m *Manager) RequestDownload(id string) (State, bool) {
	return m.update(id, func(s *State) {
		if !s.Authenticated {
			s.AwaitingLogin = true
		}
	})
}

// MarkAuthenticated records a successful login
func (m *Manager) MarkAuthenticated(id string) (State, bool) {
	return m.update(id, func(s *State) {
		s.Authenticated = true
		s.AwaitingLogin = false
	})
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) update(id string, fn func(*State)) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return State{}, false
	}
	fn(s)
	return *s, true
}
