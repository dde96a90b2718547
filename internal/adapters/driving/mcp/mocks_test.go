package mcp

import (
	"context"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
)

// mockReviewService is a test double for driving.ReviewService.
type mockReviewService struct {
	lastReq driving.ReviewRequest
	result  *domain.ReviewResult
	err     error
}

func (m *mockReviewService) Review(_ context.Context, req driving.ReviewRequest) (*domain.ReviewResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.ReviewResult{}, nil
}

// mockContentService is a test double for driving.ContentService.
type mockContentService struct {
	chunks  []domain.ContentChunk
	results []domain.ScoredChunk
	err     error
}

func (m *mockContentService) AddArticle(_ context.Context, _, _, _ string) error {
	return m.err
}

func (m *mockContentService) Search(_ context.Context, _ string, _ int) ([]domain.ScoredChunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockContentService) List(_ context.Context) ([]domain.ContentChunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks, nil
}
