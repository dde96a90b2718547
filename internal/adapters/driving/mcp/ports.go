package mcp

import (
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review runs the resume review pipeline.
	Review driving.ReviewService

	// Content queries the knowledge base.
	Content driving.ContentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Content is optional; the content tools report unavailability.
	return nil
}
