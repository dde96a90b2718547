package domain

// ScoringResult is the deterministic output of the relevance scorer.
// It is ephemeral: computed per request, returned to the caller, and
// optionally logged, never persisted by the core.
type ScoringResult struct {
	// ConfidenceScore is the blended final score on a 0-100 integer scale.
	ConfidenceScore int

	// JobOverlapScore is the unrounded resume/job-description overlap
	// component in [0,1] (Jaccard and coverage, equally weighted).
	JobOverlapScore float64

	// ContentRelevanceScore is the unrounded knowledge-base relevance
	// component in [0,1].
	ContentRelevanceScore float64

	// ResumeKeywordCount is the number of distinct resume keywords.
	ResumeKeywordCount int

	// JobKeywordCount is the number of distinct job-description keywords.
	JobKeywordCount int

	// MatchingKeywords are keywords present on both sides, lowercased.
	MatchingKeywords []string

	// ChunksUsed is the number of content chunks supplied to the scorer.
	ChunksUsed int
}

// ReviewResult is the full outcome of a resume review request.
type ReviewResult struct {
	// Scoring is the deterministic score breakdown.
	Scoring ScoringResult

	// Feedback is the generated natural-language review.
	Feedback string

	// Posting is the structured job posting, nil when no URL was given.
	Posting *JobPosting

	// Chunks are the knowledge-base chunks the review was grounded in.
	Chunks []ContentChunk
}
