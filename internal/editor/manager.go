package editor

import (
	"sync"

	"github.com/google/uuid"
)

// Manager keeps the open drafts of the editing session, keyed by an opaque
// token. A draft lives until it is saved or explicitly discarded; discarding
// is how "navigating away" drops uncommitted work.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewManager returns an empty draft registry.
func NewManager() *Manager {
	return &Manager{drafts: make(map[string]*Draft)}
}

// Open registers a draft and returns its token.
func (m *Manager) Open(draft *Draft) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.drafts[token] = draft
	return token
}

// Get looks up an open draft by token.
func (m *Manager) Get(token string) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[token]
	return draft, ok
}

// Discard drops an open draft without committing it.
func (m *Manager) Discard(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, token)
}
