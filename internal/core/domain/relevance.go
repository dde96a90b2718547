package domain

import "strings"

// Relevance weighting: topic-tag matches carry more signal than raw
// substring hits because tags come from the controlled vocabulary.
const (
	topicWeight   = 0.6
	contentWeight = 0.4
)

// ChunkRelevance scores a chunk against a keyword list.
//
// The score is topicWeight * (|topics ∩ keywords| / |keywords|) plus
// contentWeight * min(substring matches / |keywords|, 1), which keeps the
// result in [0,1]. Topic matches are a set intersection: a keyword
// repeated in the list still matches its topic only once. Each keyword
// counts at most once regardless of how many times it occurs in the
// chunk body. An empty keyword list scores 0.
func ChunkRelevance(chunk *ContentChunk, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	topics := make(map[string]bool, len(chunk.Topics))
	for _, t := range chunk.Topics {
		topics[strings.ToLower(t)] = true
	}

	contentLower := strings.ToLower(chunk.Content)

	matchedTopics := make(map[string]bool)
	contentMatches := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if topics[kw] {
			matchedTopics[kw] = true
		}
		if kw != "" && strings.Contains(contentLower, kw) {
			contentMatches++
		}
	}
	topicMatches := len(matchedTopics)

	n := float64(len(keywords))
	topicScore := float64(topicMatches) / n * topicWeight

	contentRatio := float64(contentMatches) / n
	if contentRatio > 1.0 {
		contentRatio = 1.0
	}
	contentScore := contentRatio * contentWeight

	return topicScore + contentScore
}
