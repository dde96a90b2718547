package driving

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// ReviewRequest is a resume review submission.
type ReviewRequest struct {
	// ResumeText is the extracted plain text of the resume.
	ResumeText string

	// JobURL optionally points at the posting to score against.
	JobURL string

	// UserID identifies the requesting user for logging, may be empty.
	UserID string
}

// ReviewService runs the scoring and retrieval pipeline for a resume.
type ReviewService interface {
	// Review scores the resume, retrieves grounding content, and
	// generates feedback. Scoring always completes; narrative
	// generation degrades to a template summary when no LLM is
	// configured. A job URL that cannot be parsed fails the review.
	Review(ctx context.Context, req ReviewRequest) (*domain.ReviewResult, error)
}
