package session

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/wate11/HyMatch-project/internal/domain/job"
)

var ErrNotFound = errors.New("session not found")

// Manager owns every live session. Sessions hold all mutable state in
// memory and disappear when ended; nothing survives across sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	catalog []job.Job
	logger  *log.Logger
	sink    EventSink
}

func NewManager(catalog []job.Job, logger *log.Logger, sink EventSink) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		catalog:  catalog,
		logger:   logger,
		sink:     sink,
	}
}

// Create starts a new session over the shared read-only catalog.
func (m *Manager) Create() *Session {
	s := New(uuid.New(), m.catalog, m.logger, m.sink)

	m.mu.Lock()
	m.sessions[s.ID] = s
	total := len(m.sessions)
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Printf("[Sessions] Created | session=%s total=%d", s.ID, total)
	}
	return s
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete tears a session down. Idempotent.
func (m *Manager) Delete(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	total := len(m.sessions)
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Printf("[Sessions] Ended | session=%s total=%d", id, total)
	}
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
