package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestCalculateConfidenceScore_EmptyInputs(t *testing.T) {
	result := CalculateConfidenceScore("", nil, nil)

	// Base credit only: nothing to match, nothing to draw on.
	assert.Equal(t, 30, result.ConfidenceScore)
	assert.Zero(t, result.JobOverlapScore)
	assert.Zero(t, result.ContentRelevanceScore)
	assert.Zero(t, result.ResumeKeywordCount)
	assert.Zero(t, result.JobKeywordCount)
	assert.Empty(t, result.MatchingKeywords)
}

func TestCalculateConfidenceScore_FullOverlap(t *testing.T) {
	result := CalculateConfidenceScore(
		"python sql kubernetes",
		[]string{"python", "sql", "kubernetes"},
		nil,
	)

	assert.InDelta(t, 1.0, result.JobOverlapScore, 1e-9)
	assert.Equal(t, 70, result.ConfidenceScore)
	assert.Equal(t, []string{"kubernetes", "python", "sql"}, result.MatchingKeywords)
}

func TestCalculateConfidenceScore_ZeroOverlap(t *testing.T) {
	result := CalculateConfidenceScore(
		"golang rust concurrency",
		[]string{"python", "sql"},
		nil,
	)

	assert.Zero(t, result.JobOverlapScore)
	assert.Empty(t, result.MatchingKeywords)
	assert.Zero(t, result.ConfidenceScore)
}

func TestCalculateConfidenceScore_PartialOverlapWithChunks(t *testing.T) {
	chunks := []domain.ContentChunk{
		{Content: "tailor your resume", Topics: []string{"resume", "interview"}},
	}

	result := CalculateConfidenceScore(
		"python sql",
		[]string{"python", "sql", "java", "rust"},
		chunks,
	)

	// jaccard 2/4 and coverage 2/4 blend to 0.5; one chunk with two
	// review topics gives 0.3 + 0.2 + 0.2 = 0.7.
	assert.InDelta(t, 0.5, result.JobOverlapScore, 1e-9)
	assert.InDelta(t, 0.7, result.ContentRelevanceScore, 1e-9)
	assert.Equal(t, 56, result.ConfidenceScore)
	assert.Equal(t, []string{"python", "sql"}, result.MatchingKeywords)
	assert.Equal(t, 1, result.ChunksUsed)
}

func TestCalculateConfidenceScore_NoJobKeywordsUsesContentOnly(t *testing.T) {
	chunks := []domain.ContentChunk{
		{Content: "a", Topics: []string{"resume"}},
		{Content: "b", Topics: []string{"interview"}},
	}

	result := CalculateConfidenceScore("strong product manager resume", nil, chunks)

	// 0.3 + 0.4 chunk bonus + 0.2 topic coverage = 0.9, then 0.3 + 0.9*0.7.
	assert.InDelta(t, 0.9, result.ContentRelevanceScore, 1e-9)
	assert.Equal(t, 93, result.ConfidenceScore)
	assert.Zero(t, result.JobOverlapScore)
}

func TestCalculateConfidenceScore_ContentScoreCapped(t *testing.T) {
	var chunks []domain.ContentChunk
	for i := 0; i < 10; i++ {
		chunks = append(chunks, domain.ContentChunk{
			Content: "everything about job search",
			Topics:  domain.ReviewTopics,
		})
	}

	result := CalculateConfidenceScore("resume", nil, chunks)

	assert.InDelta(t, 1.0, result.ContentRelevanceScore, 1e-9)
	assert.Equal(t, 100, result.ConfidenceScore)
}

func TestCalculateConfidenceScore_Bounded(t *testing.T) {
	cases := []struct {
		name     string
		resume   string
		keywords []string
		chunks   []domain.ContentChunk
	}{
		{name: "all empty"},
		{name: "resume only", resume: "python engineer with sql"},
		{name: "keywords only", keywords: []string{"python", "sql"}},
		{
			name:     "everything",
			resume:   "python sql product manager",
			keywords: []string{"python", "sql", "product", "manager"},
			chunks: []domain.ContentChunk{
				{Content: "resume advice", Topics: domain.TopicVocabulary},
				{Content: "interview advice", Topics: domain.TopicVocabulary},
				{Content: "more advice", Topics: domain.TopicVocabulary},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CalculateConfidenceScore(tc.resume, tc.keywords, tc.chunks)

			assert.GreaterOrEqual(t, result.ConfidenceScore, 0)
			assert.LessOrEqual(t, result.ConfidenceScore, 100)
			assert.GreaterOrEqual(t, result.JobOverlapScore, 0.0)
			assert.LessOrEqual(t, result.JobOverlapScore, 1.0)
			assert.GreaterOrEqual(t, result.ContentRelevanceScore, 0.0)
			assert.LessOrEqual(t, result.ContentRelevanceScore, 1.0)
		})
	}
}

func TestCalculateConfidenceScore_Deterministic(t *testing.T) {
	resume := "senior python developer, sql and kubernetes experience"
	keywords := []string{"python", "kubernetes", "terraform"}
	chunks := []domain.ContentChunk{
		{Content: "keywords matter", Topics: []string{"keywords"}},
	}

	first := CalculateConfidenceScore(resume, keywords, chunks)
	second := CalculateConfidenceScore(resume, keywords, chunks)

	require.Equal(t, first, second)
}
