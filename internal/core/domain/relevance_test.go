package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkRelevance_EmptyKeywords(t *testing.T) {
	chunk := ContentChunk{Content: "resume tips", Topics: []string{"resume"}}
	assert.Zero(t, ChunkRelevance(&chunk, nil))
	assert.Zero(t, ChunkRelevance(&chunk, []string{}))
}

func TestChunkRelevance_TopicAndContent(t *testing.T) {
	chunk := ContentChunk{
		Content: "keyword density matters for ats screening",
		Topics:  []string{"keywords", "ats"},
	}

	// "keywords" matches a topic but not the body ("keyword" appears,
	// "keywords" does not); "ats" matches both.
	score := ChunkRelevance(&chunk, []string{"keywords", "ats"})
	// topic: 2/2 * 0.6 = 0.6; content: 1/2 * 0.4 = 0.2
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestChunkRelevance_CaseInsensitive(t *testing.T) {
	chunk := ContentChunk{
		Content: "Customize every BULLET for the job",
		Topics:  []string{"customization"},
	}

	score := ChunkRelevance(&chunk, []string{"CUSTOMIZATION", "Bullet"})
	// topic: 1/2 * 0.6 = 0.3; content: 1/2 * 0.4 = 0.2
	// ("customization" is not a substring of the body)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestChunkRelevance_Bounded(t *testing.T) {
	chunk := ContentChunk{
		Content: "resume interview keywords ats screening story",
		Topics:  TopicVocabulary,
	}

	score := ChunkRelevance(&chunk, []string{"resume", "interview", "keywords"})
	assert.LessOrEqual(t, score, 1.0)
	assert.Greater(t, score, 0.0)
}

func TestChunkRelevance_DuplicateKeywordsMatchTopicOnce(t *testing.T) {
	chunk := ContentChunk{Topics: []string{"resume"}}

	// Search queries are split without deduplication, so a repeated
	// keyword reaches scoring twice. The topic intersection still
	// counts it once, against the full keyword count.
	score := ChunkRelevance(&chunk, []string{"resume", "resume"})
	// topic: 1/2 * 0.6 = 0.3; content: empty body, 0
	assert.InDelta(t, 0.3, score, 1e-9)
}

func TestChunkRelevance_NoMatches(t *testing.T) {
	chunk := ContentChunk{Content: "unrelated text", Topics: []string{"ats"}}
	assert.Zero(t, ChunkRelevance(&chunk, []string{"golang", "rust"}))
}
