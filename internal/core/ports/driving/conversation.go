package driving

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// ConversationService drives the progressive-disclosure review dialogue.
// All state lives in the injected SessionStore; the service itself is
// stateless and safe for concurrent use.
type ConversationService interface {
	// Start begins a conversation from a completed review, replacing any
	// previous session for the user. Returns the opening messages.
	Start(ctx context.Context, userID, userName string, review *domain.ReviewResult) ([]domain.Message, error)

	// Continue advances the conversation with a user message.
	// Returns domain.ErrNotFound when the user has no active session.
	Continue(ctx context.Context, userID, input string) ([]domain.Message, error)

	// End discards the user's session.
	End(ctx context.Context, userID string) error
}
