package session

import (
	"sync"

	"github.com/google/uuid"

	"turkeypos/internal/journal"
	"turkeypos/internal/pos/ports"
)

// Manager is the registry of live terminal sessions, keyed by session id.
type Manager struct {
	orders  ports.OrderService
	journal journal.Repository

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(orders ports.OrderService, jr journal.Repository) *Manager {
	return &Manager{
		orders:   orders,
		journal:  jr,
		sessions: make(map[string]*Session),
	}
}

// Open creates a fresh session with an empty cart.
func (m *Manager) Open() *Session {
	s := newSession(uuid.NewString(), m.orders, m.journal)
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close drops a session from the registry. Any transaction state it held is
// discarded; carts are never persisted across sessions.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
