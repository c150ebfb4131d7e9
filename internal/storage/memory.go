package storage

import (
	"sync"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

// sessionEntry pairs a record with the lock that serializes its updates
type sessionEntry struct {
	mu      sync.Mutex
	session *models.Session
}

// MemoryStore holds all sessions in process memory.
// Records are never evicted; they live for the lifetime of the process.
type MemoryStore struct {
	sessions map[string]*sessionEntry
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*sessionEntry),
	}
}

func (m *MemoryStore) entry(id string) *sessionEntry {
	m.mu.RLock()
	e, exists := m.sessions[id]
	m.mu.RUnlock()
	if exists {
		return e
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another request may have created it between the two locks
	if e, exists = m.sessions[id]; exists {
		return e
	}
	e = &sessionEntry{session: models.NewSession(id)}
	m.sessions[id] = e
	return e
}

// Update applies fn to the session under its own lock
func (m *MemoryStore) Update(id string, fn func(s *models.Session)) *models.Session {
	e := m.entry(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.session)
	return e.session.Clone()
}

// Get returns a copy of the session record
func (m *MemoryStore) Get(id string) (*models.Session, error) {
	m.mu.RLock()
	e, exists := m.sessions[id]
	m.mu.RUnlock()
	if !exists {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

// Len returns the number of sessions seen so far
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Snapshot returns copies of every session record
func (m *MemoryStore) Snapshot() []*models.Session {
	m.mu.RLock()
	entries := make([]*sessionEntry, 0, len(m.sessions))
	for _, e := range m.sessions {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		sessions = append(sessions, e.session.Clone())
		e.mu.Unlock()
	}
	return sessions
}
