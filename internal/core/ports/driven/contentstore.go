package driven

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// ContentStore persists knowledge-base chunks and serves scored retrieval.
// Chunks are immutable once created; the store only ever appends.
// Implementations must serialize AddDocument so the persisted snapshot
// never interleaves two writers.
type ContentStore interface {
	// AddDocument splits an article into sections on markdown heading
	// boundaries, tags each section with controlled-vocabulary topics,
	// appends the resulting chunks, and persists the full chunk list.
	// On failure the previously persisted state remains intact.
	AddDocument(ctx context.Context, content, sourceName, sourceURL string) error

	// RelevantChunks scores every chunk against the keyword list and
	// returns up to maxChunks chunks with score > 0, best first.
	// Ties keep insertion order. An empty keyword list returns nothing.
	RelevantChunks(ctx context.Context, keywords []string, maxChunks int) ([]domain.ContentChunk, error)

	// Search scores chunks against the whitespace-split lowercased query
	// and returns chunk/score pairs, best first.
	Search(ctx context.Context, query string, maxResults int) ([]domain.ScoredChunk, error)

	// Get retrieves a chunk by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, chunkID string) (*domain.ContentChunk, error)

	// All returns every stored chunk in insertion order.
	All(ctx context.Context) ([]domain.ContentChunk, error)

	// Close releases resources (snapshot watchers, file handles).
	Close() error
}
