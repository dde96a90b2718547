package domain

import "time"

// ConversationStep identifies where a review conversation currently is.
// The conversation engine is a pure transition function over these steps;
// all state lives in the Session record, never in package globals.
type ConversationStep string

const (
	StepInitial            ConversationStep = "initial"
	StepSummarySent        ConversationStep = "summary_sent"
	StepAwaitingChoice     ConversationStep = "awaiting_choice"
	StepSkillsDetail       ConversationStep = "skills_detail"
	StepExperienceDetail   ConversationStep = "experience_detail"
	StepFormattingDetail   ConversationStep = "formatting_detail"
	StepCompleteReview     ConversationStep = "complete_review"
	StepEngagementQuestion ConversationStep = "engagement_question"
	StepAwaitingConcern    ConversationStep = "awaiting_concern"
	StepFinalAdvice        ConversationStep = "final_advice"
)

// Valid reports whether the step is one of the defined conversation steps.
func (s ConversationStep) Valid() bool {
	switch s {
	case StepInitial, StepSummarySent, StepAwaitingChoice,
		StepSkillsDetail, StepExperienceDetail, StepFormattingDetail,
		StepCompleteReview, StepEngagementQuestion, StepAwaitingConcern,
		StepFinalAdvice:
		return true
	}
	return false
}

// Session is the serializable conversation state for one user.
// Keyed by the user identifier (a phone number for chat transports).
type Session struct {
	// ID uniquely identifies the session.
	ID string

	// UserID is the chat-channel user identifier (e.g. phone number).
	UserID string

	// UserName is used for personalisation, may be empty.
	UserName string

	// Step is the current conversation step.
	Step ConversationStep

	// Review is the result of the resume review driving this conversation.
	Review *ReviewResult

	// LastInput is the most recent user message.
	LastInput string

	// MessageCount is the number of inbound messages handled so far.
	MessageCount int

	// StartedAt is when the conversation began.
	StartedAt time.Time

	// UpdatedAt is when the session was last touched.
	UpdatedAt time.Time
}

// Message is one outbound chat message produced by the conversation engine.
type Message struct {
	// Body is the message text.
	Body string

	// QuickReplies are suggested short responses, may be empty.
	QuickReplies []string
}
