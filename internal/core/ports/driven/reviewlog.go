package driven

import (
	"context"
	"time"
)

// ReviewLogEntry records one review-related user action.
type ReviewLogEntry struct {
	// ID uniquely identifies the entry.
	ID string

	// UserID is the chat-channel user identifier.
	UserID string

	// Action names what happened (e.g. "review_completed", "resume_received").
	Action string

	// Confidence is the review confidence score, 0 when not applicable.
	Confidence int

	// Detail carries free-form context (job URL, error text).
	Detail string

	// CreatedAt is when the action happened.
	CreatedAt time.Time
}

// ReviewLogStore records review activity for diagnostics.
// This is an optional service - when nil, activity is simply not recorded.
type ReviewLogStore interface {
	// Append records an entry.
	Append(ctx context.Context, entry *ReviewLogEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]ReviewLogEntry, error)
}
