// Package chunker splits articles into section chunks on markdown
// heading boundaries.
package chunker

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// headingPattern matches level 1-3 markdown headings preceded by a
// newline. The text before the first heading becomes its own section.
var headingPattern = regexp.MustCompile(`\n#{1,3}\s+`)

// Processor splits article content into topic-tagged section chunks.
type Processor struct {
	now func() time.Time
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits content into one chunk per heading section.
//
// The first line of each section becomes the section title; the rest is
// the chunk body (a single-line section is its own body). Chunk IDs are
// derived from the source name plus the section's ordinal in the split,
// so re-adding the same article produces the same IDs. Empty sections
// are skipped but still consume an ordinal.
func (p *Processor) Process(content, sourceName, sourceURL string) []domain.ContentChunk {
	sections := headingPattern.Split(content, -1)

	chunks := make([]domain.ContentChunk, 0, len(sections))
	for i, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		lines := strings.Split(section, "\n")
		title := strings.TrimSpace(strings.TrimLeft(lines[0], "# "))
		body := title
		if len(lines) > 1 {
			body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
		}

		chunks = append(chunks, domain.ContentChunk{
			ID:           chunkID(sourceName, i),
			Content:      body,
			SourceName:   sourceName,
			SectionTitle: title,
			Topics:       ExtractTopics(body),
			SourceURL:    sourceURL,
			CreatedAt:    p.now(),
		})
	}

	return chunks
}

// ExtractTopics scans content for controlled-vocabulary terms.
// Matching is a case-insensitive substring test; results keep the
// vocabulary's order.
func ExtractTopics(content string) []string {
	lower := strings.ToLower(content)

	var topics []string
	for _, topic := range domain.TopicVocabulary {
		if strings.Contains(lower, topic) {
			topics = append(topics, topic)
		}
	}
	return topics
}

// chunkID builds a stable chunk identifier from the source name and the
// section ordinal, e.g. "my_article_0".
func chunkID(sourceName string, ordinal int) string {
	slug := strings.ReplaceAll(strings.ToLower(sourceName), " ", "_")
	return fmt.Sprintf("%s_%d", slug, ordinal)
}
