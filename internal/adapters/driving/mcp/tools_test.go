package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestServer_handleReview(t *testing.T) {
	ctx := context.Background()

	t.Run("returns review output", func(t *testing.T) {
		mockReview := &mockReviewService{
			result: &domain.ReviewResult{
				Scoring: domain.ScoringResult{
					ConfidenceScore:       72,
					JobOverlapScore:       0.5,
					ContentRelevanceScore: 0.7,
					MatchingKeywords:      []string{"python", "sql"},
				},
				Feedback: "Solid resume.",
				Posting: &domain.JobPosting{
					Success:     true,
					RoleTitle:   "Product Manager",
					CompanyName: "Acme",
				},
			},
		}

		server, err := NewServer(&Ports{Review: mockReview})
		require.NoError(t, err)

		input := ReviewInput{ResumeText: "resume text", JobURL: "https://example.com/jobs/1"}
		_, output, err := server.handleReview(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 72, output.ConfidenceScore)
		assert.Equal(t, []string{"python", "sql"}, output.MatchingKeywords)
		assert.Equal(t, "Solid resume.", output.Feedback)
		assert.Equal(t, "Product Manager", output.RoleTitle)
		assert.Equal(t, "Acme", output.CompanyName)
		assert.Equal(t, "mcp", mockReview.lastReq.UserID)
		assert.Equal(t, "https://example.com/jobs/1", mockReview.lastReq.JobURL)
	})

	t.Run("returns error on review failure", func(t *testing.T) {
		mockReview := &mockReviewService{err: errors.New("review failed")}

		server, err := NewServer(&Ports{Review: mockReview})
		require.NoError(t, err)

		_, _, err = server.handleReview(ctx, nil, ReviewInput{ResumeText: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "review failed")
	})
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockContent := &mockContentService{
			results: []domain.ScoredChunk{
				{
					Chunk: domain.ContentChunk{
						ID:           "guide_0",
						SectionTitle: "Use the Keywords",
						SourceName:   "Customization Guide",
						Topics:       []string{"resume", "keywords"},
						Content:      "Mirror the posting's language.",
					},
					Score: 0.95,
				},
			},
		}

		server, err := NewServer(&Ports{Review: &mockReviewService{}, Content: mockContent})
		require.NoError(t, err)

		input := SearchInput{Query: "keywords", Limit: 10}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "guide_0", output.Results[0].ChunkID)
		assert.Equal(t, "Use the Keywords", output.Results[0].SectionTitle)
		assert.Equal(t, 0.95, output.Results[0].Score)
		assert.Equal(t, "Mirror the posting's language.", output.Results[0].Content)
	})

	t.Run("missing content service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Review: &mockReviewService{}})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockContent := &mockContentService{err: errors.New("search failed")}

		server, err := NewServer(&Ports{Review: &mockReviewService{}, Content: mockContent})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}
