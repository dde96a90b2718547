package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService manages the knowledge base of review guidance articles.
type ContentService struct {
	store driven.ContentStore
}

// NewContentService creates a new content service.
func NewContentService(store driven.ContentStore) *ContentService {
	return &ContentService{store: store}
}

// AddArticle ingests an article into the knowledge base.
func (s *ContentService) AddArticle(ctx context.Context, content, name, url string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: article content is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: article name is empty", domain.ErrInvalidInput)
	}

	logger.Info("Adding article %q (%d chars)", name, len(content))
	if err := s.store.AddDocument(ctx, content, name, url); err != nil {
		return fmt.Errorf("add article: %w", err)
	}
	return nil
}

// Search returns scored chunks matching a free-text query.
func (s *ContentService) Search(ctx context.Context, query string, limit int) ([]domain.ScoredChunk, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.ScoredChunk{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	results, err := s.store.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	logger.Debug("Search %q: %d results", query, len(results))
	return results, nil
}

// List returns all stored chunks in insertion order.
func (s *ContentService) List(ctx context.Context) ([]domain.ContentChunk, error) {
	chunks, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return chunks, nil
}
