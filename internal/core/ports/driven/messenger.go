package driven

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// Messenger delivers outbound messages over a chat channel.
// Implementations own message-length limits and splitting; callers hand
// over logical messages and the transport decides how many sends result.
type Messenger interface {
	// Send delivers the messages to the user, in order.
	Send(ctx context.Context, userID string, messages []domain.Message) error

	// Configured reports whether the transport has working credentials.
	// When false, Send is a no-op returning domain.ErrMessengerUnavailable.
	Configured() bool
}
