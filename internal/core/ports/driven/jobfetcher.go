package driven

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// JobPostingFetcher fetches a job posting URL and structures it.
// Implementations keep a registry of platform-specific parsing strategies
// keyed by host pattern; a generic fallback strategy is always present,
// so Fetch never fails on an unrecognised platform alone.
type JobPostingFetcher interface {
	// Fetch downloads the posting and returns the structured record.
	// Network or parse failures are reported inside the record
	// (Success=false, Error set); err is reserved for context cancellation.
	Fetch(ctx context.Context, url string) (*domain.JobPosting, error)
}
