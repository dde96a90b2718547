package driven

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// SessionStore persists conversation sessions keyed by user identifier.
// There is exactly one live session per user: saving overwrites any
// previous session for the same user.
type SessionStore interface {
	// Get retrieves the session for a user.
	// Returns domain.ErrNotFound if the user has no session.
	Get(ctx context.Context, userID string) (*domain.Session, error)

	// Save stores or replaces the session for session.UserID.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes the session for a user. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, userID string) error
}
