// Package memory provides in-memory implementations of driven port
// interfaces, used when no persistent store is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// Sessions vanish when the process exits.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
	}
}

// Get retrieves the session for a user.
func (s *SessionStore) Get(_ context.Context, userID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

// Save stores or replaces the session for session.UserID.
func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	if session == nil || session.UserID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = *session
	return nil
}

// Delete removes the session for a user.
func (s *SessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
