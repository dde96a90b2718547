package services

import (
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// Scoring constants. These weights are heuristic and were calibrated
// against real review sessions; keep them stable so scores stay
// comparable across versions.
const (
	// Job-overlap blend: Jaccard similarity and JD coverage, equal weight.
	jaccardWeight  = 0.5
	coverageWeight = 0.5

	// Content-relevance components.
	contentBaseScore = 0.3
	perChunkBonus    = 0.2
	maxChunkBonus    = 0.4
	perTopicBonus    = 0.1
	maxTopicBonus    = 0.3

	// Final blend with a job description present.
	jobOverlapWeight       = 0.7
	contentRelevanceWeight = 0.3

	// Without a job description: flat credit for a reviewable resume,
	// remainder weighted on knowledge-base relevance.
	noJobBaseScore     = 0.3
	noJobContentWeight = 0.7
)

// CalculateConfidenceScore blends resume/job-description keyword overlap
// with knowledge-base relevance into a single 0-100 confidence value.
//
// The function is pure: no I/O, no randomness, inputs are not mutated,
// and identical inputs always produce identical results. Every branch
// has an explicit zero fallback, so it is defined for empty resume text,
// empty keyword lists, and empty chunk lists.
func CalculateConfidenceScore(resumeText string, jdKeywords []string, chunks []domain.ContentChunk) domain.ScoringResult {
	resumeKeywords := ExtractKeywords(resumeText)

	jdResumeScore := keywordOverlapScore(resumeKeywords, jdKeywords)
	newsletterScore := contentRelevanceScore(chunks)

	var final float64
	if len(jdKeywords) == 0 {
		final = noJobBaseScore + newsletterScore*noJobContentWeight
	} else {
		final = jdResumeScore*jobOverlapWeight + newsletterScore*contentRelevanceWeight
	}

	return domain.ScoringResult{
		ConfidenceScore:       int(math.Round(final * 100)),
		JobOverlapScore:       jdResumeScore,
		ContentRelevanceScore: newsletterScore,
		ResumeKeywordCount:    len(resumeKeywords),
		JobKeywordCount:       len(jdKeywords),
		MatchingKeywords:      matchingKeywords(resumeKeywords, jdKeywords),
		ChunksUsed:            len(chunks),
	}
}

// keywordOverlapScore combines Jaccard similarity with coverage of the
// job-description keyword set. Either side empty scores 0.
func keywordOverlapScore(resumeKeywords, jdKeywords []string) float64 {
	if len(resumeKeywords) == 0 || len(jdKeywords) == 0 {
		return 0
	}

	resumeSet := lowerSet(resumeKeywords)
	jdSet := lowerSet(jdKeywords)

	intersection := 0
	for kw := range resumeSet {
		if jdSet[kw] {
			intersection++
		}
	}
	union := len(resumeSet) + len(jdSet) - intersection
	if union == 0 {
		return 0
	}

	jaccard := float64(intersection) / float64(union)
	coverage := float64(intersection) / float64(len(jdSet))

	score := jaccard*jaccardWeight + coverage*coverageWeight
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// contentRelevanceScore measures how much review guidance is available:
// a base credit for having any chunks, a bonus per chunk, and a bonus
// for each (chunk, review topic) pair. No chunks scores 0.
func contentRelevanceScore(chunks []domain.ContentChunk) float64 {
	if len(chunks) == 0 {
		return 0
	}

	contentBonus := float64(len(chunks)) * perChunkBonus
	if contentBonus > maxChunkBonus {
		contentBonus = maxChunkBonus
	}

	topicCoverage := 0.0
	for i := range chunks {
		for _, topic := range domain.ReviewTopics {
			if chunks[i].HasTopic(topic) {
				topicCoverage += perTopicBonus
			}
		}
	}
	if topicCoverage > maxTopicBonus {
		topicCoverage = maxTopicBonus
	}

	score := contentBaseScore + contentBonus + topicCoverage
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// matchingKeywords returns the lowercase intersection of both keyword
// sets, sorted for deterministic output.
func matchingKeywords(resumeKeywords, jdKeywords []string) []string {
	if len(resumeKeywords) == 0 || len(jdKeywords) == 0 {
		return []string{}
	}

	resumeSet := lowerSet(resumeKeywords)
	jdSet := lowerSet(jdKeywords)

	var matches []string
	for kw := range resumeSet {
		if jdSet[kw] {
			matches = append(matches, kw)
		}
	}
	sort.Strings(matches)
	if matches == nil {
		matches = []string{}
	}
	return matches
}

func lowerSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(kw)] = true
	}
	return set
}
