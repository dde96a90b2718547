package driving

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// ContentService manages the knowledge base of review guidance.
type ContentService interface {
	// AddArticle ingests an article, chunking it on heading boundaries.
	AddArticle(ctx context.Context, content, name, url string) error

	// Search returns scored chunks matching a free-text query.
	Search(ctx context.Context, query string, limit int) ([]domain.ScoredChunk, error)

	// List returns all stored chunks in insertion order.
	List(ctx context.Context) ([]domain.ContentChunk, error)
}
