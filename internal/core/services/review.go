package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)
var _ driven.PromptStoreAware = (*ReviewService)(nil)

// maxReviewChunks is how many knowledge-base chunks ground a review.
const maxReviewChunks = 5

// ReviewService runs the resume review pipeline: fetch and structure the
// job posting, retrieve grounding content, score, and generate feedback.
type ReviewService struct {
	contentStore driven.ContentStore
	fetcher      driven.JobPostingFetcher
	llmService   driven.LLMService
	reviewLog    driven.ReviewLogStore
	promptStore  driven.PromptStore
}

// NewReviewService creates a new review service.
// The fetcher, llmService, and reviewLog parameters are optional (can be nil):
// without a fetcher job URLs are rejected, without an LLM feedback degrades
// to a template summary, and without a log activity is not recorded.
func NewReviewService(
	contentStore driven.ContentStore,
	fetcher driven.JobPostingFetcher,
	llmService driven.LLMService,
	reviewLog driven.ReviewLogStore,
) *ReviewService {
	return &ReviewService{
		contentStore: contentStore,
		fetcher:      fetcher,
		llmService:   llmService,
		reviewLog:    reviewLog,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *ReviewService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Review scores the resume and generates feedback.
func (s *ReviewService) Review(ctx context.Context, req driving.ReviewRequest) (*domain.ReviewResult, error) {
	logger.Section("Resume Review")

	resumeText := strings.TrimSpace(req.ResumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("%w: resume text is empty", domain.ErrInvalidInput)
	}
	logger.Debug("Resume length: %d chars", len(resumeText))

	var posting *domain.JobPosting
	var jdKeywords []string

	if req.JobURL != "" {
		var err error
		posting, err = s.fetchPosting(ctx, req.JobURL)
		if err != nil {
			s.logActivity(ctx, req.UserID, "review_failed", 0, err.Error())
			return nil, err
		}
		jdKeywords = KeywordsForMatching(posting)
		logger.Info("Job posting: %q at %q (%d keywords)",
			posting.RoleTitle, posting.CompanyName, len(jdKeywords))
	}

	chunks := s.retrieveChunks(ctx, jdKeywords)
	logger.Debug("Grounding chunks: %d", len(chunks))

	scoring := CalculateConfidenceScore(resumeText, jdKeywords, chunks)
	logger.Info("Confidence score: %d (overlap=%.2f, content=%.2f)",
		scoring.ConfidenceScore, scoring.JobOverlapScore, scoring.ContentRelevanceScore)

	feedback := s.generateFeedback(ctx, resumeText, posting, chunks, scoring)

	result := &domain.ReviewResult{
		Scoring:  scoring,
		Feedback: feedback,
		Posting:  posting,
		Chunks:   chunks,
	}

	s.logActivity(ctx, req.UserID, "review_completed", scoring.ConfidenceScore, req.JobURL)

	return result, nil
}

// fetchPosting fetches and structures the job posting. A posting that
// cannot be fetched or parsed fails the review.
func (s *ReviewService) fetchPosting(ctx context.Context, url string) (*domain.JobPosting, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: no job posting fetcher configured", domain.ErrFetchFailed)
	}

	posting, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch job posting: %w", err)
	}
	if !posting.Success {
		logger.Warn("Job posting fetch failed: %s", posting.Error)
		return nil, fmt.Errorf("%w: %s", domain.ErrFetchFailed, posting.Error)
	}

	return posting, nil
}

// retrieveChunks pulls grounding content from the knowledge base.
// Retrieval failures degrade the review rather than failing it.
func (s *ReviewService) retrieveChunks(ctx context.Context, jdKeywords []string) []domain.ContentChunk {
	if s.contentStore == nil {
		return nil
	}

	keywords := jdKeywords
	if len(keywords) == 0 {
		keywords = domain.DefaultRetrievalKeywords
	}

	chunks, err := s.contentStore.RelevantChunks(ctx, keywords, maxReviewChunks)
	if err != nil {
		logger.Warn("Chunk retrieval failed: %v (review proceeds without grounding)", err)
		return nil
	}

	return chunks
}

// logActivity records review activity, best effort.
func (s *ReviewService) logActivity(ctx context.Context, userID, action string, confidence int, detail string) {
	if s.reviewLog == nil {
		return
	}

	entry := &driven.ReviewLogEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Action:     action,
		Confidence: confidence,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := s.reviewLog.Append(ctx, entry); err != nil {
		logger.Warn("Review log append failed: %v", err)
	}
}
