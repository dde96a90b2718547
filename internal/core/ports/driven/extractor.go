package driven

import "context"

// TextExtractor extracts plain text from a binary document (PDF).
// This is an optional service - without it, only plain-text resumes
// can be reviewed.
type TextExtractor interface {
	// Extract returns the document text.
	// Returns domain.ErrExtractionFailed (wrapped) when the document
	// yields no text.
	Extract(ctx context.Context, data []byte) (string, error)
}
