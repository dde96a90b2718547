package domain

import (
	"strings"
	"time"
)

// ContentChunk is one titled section of a knowledge-base article.
// It is the unit of retrieval: relevance scoring and citations both
// operate on chunks, never on whole articles.
type ContentChunk struct {
	// ID uniquely identifies the chunk within the store.
	// Derived from the source name and the section ordinal, e.g. "my_article_2".
	ID string

	// Content is the section body text (heading line excluded).
	Content string

	// SourceName is the title of the article the chunk came from.
	SourceName string

	// SectionTitle is the human-readable heading of the section.
	SectionTitle string

	// Topics are controlled-vocabulary tags found in the section body.
	// Always a subset of TopicVocabulary so overlap scoring stays deterministic.
	Topics []string

	// SourceURL is the original article location, if known.
	SourceURL string

	// CreatedAt is when the chunk was created during ingestion.
	CreatedAt time.Time
}

// HasTopic reports whether the chunk carries the given topic tag.
// Comparison is case-insensitive.
func (c *ContentChunk) HasTopic(topic string) bool {
	topic = strings.ToLower(topic)
	for _, t := range c.Topics {
		if strings.ToLower(t) == topic {
			return true
		}
	}
	return false
}

// ScoredChunk pairs a chunk with its relevance score for a query.
type ScoredChunk struct {
	Chunk ContentChunk
	Score float64
}

// TopicVocabulary is the fixed controlled vocabulary for chunk topic tags.
// Tags are assigned by case-insensitive substring scan over the section body.
// The list is configuration, not derived at runtime: changing it changes
// retrieval behaviour for every stored chunk.
var TopicVocabulary = []string{
	"resume", "interview", "job", "experience", "skills", "keywords",
	"achievements", "bullet points", "customization", "ats", "screening",
	"archetype", "story", "narrative", "strengths", "weaknesses",
}

// ReviewTopics are the topic tags that indicate a chunk covers core
// resume-review guidance. Chunks carrying these earn the topic bonus
// in the content-relevance score.
var ReviewTopics = []string{
	"resume", "interview", "customization", "bullet points", "keywords",
}

// DefaultRetrievalKeywords is the fallback keyword set used to retrieve
// content when no job posting is supplied.
var DefaultRetrievalKeywords = []string{
	"resume", "customization", "interview", "experience", "skills",
}
