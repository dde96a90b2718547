package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Reviews fall back to a template-based summary without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrMessengerUnavailable indicates the chat transport is not configured.
	// Review results can still be printed locally.
	ErrMessengerUnavailable = errors.New("messenger unavailable")

	// ErrExtractionFailed indicates resume text could not be extracted.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrFetchFailed indicates a job posting page could not be fetched.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrParseFailed indicates a job posting page could not be parsed.
	ErrParseFailed = errors.New("parse failed")

	// ErrSessionExpired indicates the conversation session is no longer valid.
	ErrSessionExpired = errors.New("session expired")
)
