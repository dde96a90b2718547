package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// Generation limits for review feedback.
const (
	feedbackMaxTokens   = 700
	feedbackTemperature = 0.4

	// maxResumePromptChars truncates very long resumes before prompting.
	maxResumePromptChars = 6000

	// maxExcerptChars truncates each knowledge-base excerpt.
	maxExcerptChars = 500
)

// Default prompts used when no PromptStore is configured or loading fails.
const (
	defaultReviewSystemPrompt = `You are a resume reviewer. Base every piece of advice on the supplied
knowledge-base excerpts; do not invent guidance beyond them. Be specific,
reference the resume's actual content, and keep the review under 400 words.`

	defaultReviewUserPrompt = `Review this resume.

Resume:
%s

Job context:
%s

Knowledge-base excerpts:
%s

A deterministic scorer rated the resume/job match at %d/100. Explain the
main drivers of that score and give concrete improvement steps.`
)

// generateFeedback produces the natural-language review. It prefers the
// configured LLM and falls back to a template summary built from the
// scoring result when no LLM is available or generation fails.
func (s *ReviewService) generateFeedback(
	ctx context.Context,
	resumeText string,
	posting *domain.JobPosting,
	chunks []domain.ContentChunk,
	scoring domain.ScoringResult,
) string {
	if s.llmService == nil {
		logger.Debug("No LLM configured, using template feedback")
		return templateFeedback(posting, chunks, scoring)
	}

	systemPrompt := s.loadPrompt(driven.PromptReviewSystem, defaultReviewSystemPrompt)
	userPrompt := fmt.Sprintf(
		s.loadPrompt(driven.PromptReviewUser, defaultReviewUserPrompt),
		truncate(resumeText, maxResumePromptChars),
		jobContext(posting),
		excerptBlock(chunks),
		scoring.ConfidenceScore,
	)

	feedback, err := s.llmService.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, driven.ChatOptions{
		MaxTokens:   feedbackMaxTokens,
		Temperature: feedbackTemperature,
	})
	if err != nil {
		logger.Warn("LLM feedback generation failed: %v (using template)", err)
		return templateFeedback(posting, chunks, scoring)
	}

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return templateFeedback(posting, chunks, scoring)
	}
	return feedback
}

// loadPrompt fetches a prompt from the store, falling back to the default.
func (s *ReviewService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		logger.Debug("Prompt %q unavailable, using default", name)
		return fallback
	}
	return prompt
}

// jobContext renders the posting for the prompt.
func jobContext(posting *domain.JobPosting) string {
	if posting == nil {
		return "No job description was provided; review the resume on general quality."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Role: %s\nCompany: %s\n", posting.RoleTitle, posting.CompanyName)
	if len(posting.Skills) > 0 {
		fmt.Fprintf(&b, "Skills sought: %s\n", strings.Join(posting.Skills, ", "))
	}
	fmt.Fprintf(&b, "Description:\n%s", truncate(posting.Description, maxResumePromptChars))
	return b.String()
}

// excerptBlock renders retrieved chunks as numbered excerpts.
func excerptBlock(chunks []domain.ContentChunk) string {
	if len(chunks) == 0 {
		return "(no excerpts available)"
	}

	var b strings.Builder
	for i := range chunks {
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s\n\n",
			i+1, chunks[i].SectionTitle, chunks[i].SourceName,
			truncate(chunks[i].Content, maxExcerptChars))
	}
	return strings.TrimSpace(b.String())
}

// templateFeedback builds a deterministic summary from the scoring result.
func templateFeedback(posting *domain.JobPosting, chunks []domain.ContentChunk, scoring domain.ScoringResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resume review (confidence %d/100)\n\n", scoring.ConfidenceScore)

	if posting != nil {
		fmt.Fprintf(&b, "Scored against: %s at %s\n", posting.RoleTitle, posting.CompanyName)
		if len(scoring.MatchingKeywords) > 0 {
			fmt.Fprintf(&b, "Keywords matching the posting: %s\n",
				strings.Join(scoring.MatchingKeywords, ", "))
		} else {
			b.WriteString("No resume keywords matched the posting. Mirror the posting's wording for the skills you actually have.\n")
		}
		fmt.Fprintf(&b, "Keyword overlap score: %.0f/100 against %d posting keywords.\n\n",
			scoring.JobOverlapScore*100, scoring.JobKeywordCount)
	} else {
		b.WriteString("No job description was provided, so the score reflects general resume quality signals only.\n\n")
	}

	if len(chunks) > 0 {
		b.WriteString("Guidance drawn from:\n")
		for i := range chunks {
			fmt.Fprintf(&b, "- %s (%s)\n", chunks[i].SectionTitle, chunks[i].SourceName)
		}
	}

	return strings.TrimSpace(b.String())
}

// truncate cuts s to at most n bytes, backing up to a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
