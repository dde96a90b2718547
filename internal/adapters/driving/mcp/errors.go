// Package mcp provides an MCP (Model Context Protocol) server adapter for revu.
// It lets AI assistants run resume reviews and query the knowledge base.
package mcp

import "errors"

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("mcp: review service is required")
