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

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// sessionTTL is how long a session may sit idle before it expires.
const sessionTTL = 30 * time.Minute

// ConversationService drives the progressive-disclosure review dialogue.
// It is a pure transition function over conversation steps; every piece
// of state round-trips through the session store, so any number of
// instances can serve the same user.
type ConversationService struct {
	sessions driven.SessionStore
}

// NewConversationService creates a new conversation service.
func NewConversationService(sessions driven.SessionStore) *ConversationService {
	return &ConversationService{sessions: sessions}
}

// Start begins a conversation from a completed review, replacing any
// previous session for the user.
func (s *ConversationService) Start(
	ctx context.Context, userID, userName string, review *domain.ReviewResult,
) ([]domain.Message, error) {
	if review == nil {
		return nil, fmt.Errorf("%w: review result is required", domain.ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Step:      domain.StepSummarySent,
		Review:    review,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Debug("Conversation started for %s (confidence %d)",
		userID, review.Scoring.ConfidenceScore)

	return []domain.Message{{
		Body:         executiveSummary(userName, review),
		QuickReplies: choiceReplies(),
	}}, nil
}

// Continue advances the conversation with a user message.
func (s *ConversationService) Continue(ctx context.Context, userID, input string) ([]domain.Message, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if time.Since(session.UpdatedAt) > sessionTTL {
		if err := s.sessions.Delete(ctx, userID); err != nil {
			logger.Warn("Expired session cleanup failed: %v", err)
		}
		return nil, fmt.Errorf("%w: idle for more than %s", domain.ErrSessionExpired, sessionTTL)
	}

	session.MessageCount++
	session.LastInput = input
	session.UpdatedAt = time.Now()

	var messages []domain.Message

	switch session.Step {
	case domain.StepSummarySent, domain.StepAwaitingChoice:
		messages = s.handleChoice(session, input)
	case domain.StepSkillsDetail, domain.StepExperienceDetail,
		domain.StepFormattingDetail, domain.StepCompleteReview:
		messages = s.handleDetailFollowup(session, input)
	case domain.StepEngagementQuestion, domain.StepAwaitingConcern:
		messages = s.handleConcern(session, input)
	default:
		messages = []domain.Message{{Body: fallbackMessage}}
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return messages, nil
}

// End discards the user's session.
func (s *ConversationService) End(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// handleChoice routes the user's focus-area choice. Unrecognised input
// falls through to the complete review.
func (s *ConversationService) handleChoice(session *domain.Session, input string) []domain.Message {
	var messages []domain.Message

	switch normalizeChoice(input) {
	case "skills":
		messages = append(messages, domain.Message{Body: skillsDetail(session.Review)})
		session.Step = domain.StepSkillsDetail
	case "experience":
		messages = append(messages, domain.Message{Body: experienceDetail(session.Review)})
		session.Step = domain.StepExperienceDetail
	case "formatting":
		messages = append(messages, domain.Message{Body: formattingDetail(session.Review)})
		session.Step = domain.StepFormattingDetail
	default:
		messages = append(messages, domain.Message{Body: completeReview(session.Review)})
		session.Step = domain.StepCompleteReview
	}

	messages = append(messages, domain.Message{
		Body:         engagementQuestion,
		QuickReplies: concernReplies(),
	})
	session.Step = domain.StepEngagementQuestion

	return messages
}

// handleDetailFollowup answers "yes"/"examples" style follow-ups with
// concrete rewrite examples, anything else with the engagement question.
func (s *ConversationService) handleDetailFollowup(session *domain.Session, input string) []domain.Message {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "examples", "show me":
		return []domain.Message{{Body: specificExamples(session.Step)}}
	}
	return s.handleConcern(session, "general")
}

// handleConcern maps the user's stated concern to targeted advice and
// closes the conversation flow.
func (s *ConversationService) handleConcern(session *domain.Session, input string) []domain.Message {
	advice := targetedAdvice(normalizeConcern(input))
	session.Step = domain.StepFinalAdvice
	return []domain.Message{{Body: advice}}
}

func normalizeChoice(input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "skills":
		return "skills"
	case "2", "experience":
		return "experience"
	case "3", "formatting":
		return "formatting"
	default:
		return "complete"
	}
}

func normalizeConcern(input string) string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "a", "ats":
		return "ats"
	case "b", "interview":
		return "interview"
	case "c", "requirements":
		return "requirements"
	case "d", "formatting":
		return "formatting"
	default:
		return "general"
	}
}

func choiceReplies() []string {
	return []string{
		"1. Skills & Keywords",
		"2. Experience & Achievements",
		"3. Formatting & ATS",
		"4. All Areas (Complete Review)",
	}
}

func concernReplies() []string {
	return []string{
		"A. ATS Screening",
		"B. Standing Out in Interviews",
		"C. Job Requirements",
		"D. Formatting",
	}
}

// executiveSummary opens the conversation with the score and context.
func executiveSummary(userName string, review *domain.ReviewResult) string {
	roleTitle := "this role"
	company := "the company"
	if review.Posting != nil {
		roleTitle = review.Posting.RoleTitle
		company = review.Posting.CompanyName
	}

	greeting := "Hey there!"
	if userName != "" {
		greeting = fmt.Sprintf("Hey %s!", userName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resume Review\n\n%s I analyzed your resume for the %s role at %s.\n\n",
		greeting, roleTitle, company)

	if len(review.Scoring.MatchingKeywords) > 0 {
		fmt.Fprintf(&b, "Matching keywords: %s\n",
			strings.Join(head(review.Scoring.MatchingKeywords, 3), ", "))
	}
	fmt.Fprintf(&b, "Confidence: %s\n\n", confidenceText(review.Scoring.ConfidenceScore))

	b.WriteString("What would you like me to dive deeper into?")
	return b.String()
}

// skillsDetail analyses keyword coverage against the posting.
func skillsDetail(review *domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("Skills & Keywords Analysis\n\n")

	matching := review.Scoring.MatchingKeywords
	missing := missingKeywords(review)

	if len(matching) > 0 {
		fmt.Fprintf(&b, "MATCHING: %s\n", strings.Join(head(matching, 3), ", "))
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, "MISSING: %s\n", strings.Join(head(missing, 5), ", "))
		fmt.Fprintf(&b, "\nKeywords are your resume's currency. You're missing %d key requirements for this role.\n", len(missing))
		b.WriteString("\nAction Plan:\n")
		for i, kw := range head(missing, 3) {
			fmt.Fprintf(&b, "%d. Add %q to your skills section\n", i+1, kw)
		}
	} else {
		b.WriteString("\nYour keywords line up well with the posting. Keep them specific and current.\n")
	}

	b.WriteString("\nWant me to show you exactly how to add these? Reply \"YES\" for specific examples.")
	return b.String()
}

// experienceDetail pushes toward quantified, strategic bullet points.
func experienceDetail(_ *domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("Experience & Achievements Analysis\n\n")
	b.WriteString("Strategic impact trumps tactical wins. Hiring managers scan for scope, numbers, and outcomes.\n\n")
	b.WriteString("Strengthen these areas:\n")
	b.WriteString("- Multi-phase project leadership\n")
	b.WriteString("- Cross-functional team management\n")
	b.WriteString("- Quantified business outcomes\n")
	b.WriteString("\nWant specific examples of how to rewrite your bullet points? Reply \"EXAMPLES\".")
	return b.String()
}

// formattingDetail covers ATS-safe presentation.
func formattingDetail(_ *domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("Formatting & ATS Analysis\n\n")
	b.WriteString("ATS systems are your first interviewer. Clean formatting gets you past the initial screening.\n\n")
	b.WriteString("Quick Fixes:\n")
	b.WriteString("1. Use standard fonts (Arial, Calibri)\n")
	b.WriteString("2. Avoid tables and complex layouts\n")
	b.WriteString("3. Use bullet points consistently\n")
	return b.String()
}

// completeReview concatenates every detail section plus an action list.
func completeReview(review *domain.ReviewResult) string {
	var b strings.Builder
	b.WriteString("Complete Resume Review\n\n")
	b.WriteString(skillsDetail(review))
	b.WriteString("\n\n")
	b.WriteString(experienceDetail(review))
	b.WriteString("\n\n")
	b.WriteString(formattingDetail(review))
	b.WriteString("\n\nAction Items:\n")
	b.WriteString("1. This week: add missing keywords, strengthen 2-3 strategic bullet points\n")
	b.WriteString("2. Next two weeks: improve stakeholder stories, optimize formatting for ATS\n")
	b.WriteString("3. Ongoing: track application success rates and update based on feedback\n")
	return b.String()
}

const engagementQuestion = `Quick question: what's your biggest concern about this resume?

A) Getting past ATS screening
B) Standing out in interviews
C) Matching the job requirements
D) Formatting and presentation

This helps me give you more targeted advice.`

const fallbackMessage = `I'm here to help with your resume review.

You can:
- Ask for specific examples
- Get more detailed feedback
- Ask about any resume concerns

What would you like to focus on?`

// targetedAdvice answers the user's stated concern.
func targetedAdvice(concern string) string {
	switch concern {
	case "ats":
		return `ATS Screening Strategy

ATS systems scan for keywords, not creativity.

Key Actions:
1. Add exact job title keywords to your resume
2. Use standard section headers (Experience, Skills, Education)
3. Avoid graphics, tables, and fancy formatting
4. Include both acronyms and full terms (e.g. "API" and "Application Programming Interface")

Pro tip: use the job description as your keyword guide.`
	case "interview":
		return `Standing Out in Interviews

Your resume should tell stories that interviewers want to explore.

Key Actions:
1. Include specific metrics and outcomes
2. Add "so what?" context to achievements
3. Prepare STAR method examples for each bullet point
4. Research company culture and values

Pro tip: every bullet point should answer "what problem did I solve?"`
	case "requirements":
		return `Job Requirements Matching

Customize your resume for each role, not each company.

Key Actions:
1. Mirror the job description language
2. Prioritize relevant experience at the top
3. Add transferable skills that apply to the role
4. Quantify achievements that match job scope

Pro tip: use the job requirements as your resume outline.`
	case "formatting":
		return `Formatting & Presentation

Professional formatting builds trust before anyone reads a word.

Key Actions:
1. Use consistent spacing and alignment
2. Choose readable fonts (Arial, Calibri, Times New Roman)
3. Use bullet points for easy scanning
4. Keep sections clearly separated

Pro tip: print your resume to check how it looks on paper.`
	default:
		return `General Resume Strategy

Your resume is a marketing document, not a biography.

Key Actions:
1. Focus on achievements, not just responsibilities
2. Use action verbs to start bullet points
3. Quantify results whenever possible
4. Keep it concise and scannable

Pro tip: ask yourself "would this bullet point help me get an interview?"`
	}
}

// specificExamples returns before/after rewrites for the area the user
// was exploring.
func specificExamples(step domain.ConversationStep) string {
	switch step {
	case domain.StepSkillsDetail:
		return `Specific Skills Examples

BEFORE: "Experienced with various technologies"
AFTER: "Proficient in Python, React, AWS, and Docker with 3+ years building scalable web applications"

How to add:
1. Replace generic terms with specific technologies
2. Include years of experience
3. Add context about how you used them
4. Match the job description keywords exactly`
	case domain.StepExperienceDetail:
		return `Specific Experience Examples

BEFORE: "Managed team projects"
AFTER: "Led cross-functional team of 8 engineers and designers to deliver mobile app with 50K+ downloads, resulting in 25% increase in user engagement"

How to rewrite:
1. Start with a strong action verb
2. Include team size and composition
3. Add specific metrics and outcomes
4. Connect to business impact`
	default:
		return `General Improvement Examples

BEFORE: "Responsible for project management"
AFTER: "Managed 5 concurrent projects with $2M budget, delivering 3 months ahead of schedule"

BEFORE: "Good communication skills"
AFTER: "Presented quarterly results to C-suite executives, influencing $500K budget allocation"

Key Principles:
1. Quantify everything possible
2. Focus on outcomes, not just activities
3. Match the job description language`
	}
}

// confidenceText maps the 0-100 score to a reader-friendly verdict.
func confidenceText(confidence int) string {
	switch {
	case confidence >= 80:
		return fmt.Sprintf("%d/100 - Strong match, minor improvements needed", confidence)
	case confidence >= 60:
		return fmt.Sprintf("%d/100 - Good foundation, needs customization", confidence)
	case confidence >= 40:
		return fmt.Sprintf("%d/100 - Some alignment, significant improvements needed", confidence)
	default:
		return fmt.Sprintf("%d/100 - Needs major customization for this role", confidence)
	}
}

// missingKeywords lists posting keywords the resume did not match.
func missingKeywords(review *domain.ReviewResult) []string {
	if review.Posting == nil {
		return nil
	}

	matched := make(map[string]bool, len(review.Scoring.MatchingKeywords))
	for _, kw := range review.Scoring.MatchingKeywords {
		matched[kw] = true
	}

	var missing []string
	for _, kw := range KeywordsForMatching(review.Posting) {
		if !matched[kw] {
			missing = append(missing, kw)
		}
	}
	return missing
}

// head returns at most n leading elements.
func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
