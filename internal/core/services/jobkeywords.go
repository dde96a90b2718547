package services

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// maxDescriptionKeywords bounds how many description keywords feed into
// matching; titles and skills are short and always taken in full.
const maxDescriptionKeywords = 20

// KeywordsForMatching flattens a job posting into the keyword list the
// scorer matches resumes against: role title words, detected skills,
// company name words, and the top description keywords by frequency.
// Everything is lowercased and deduplicated, preserving first-seen order.
func KeywordsForMatching(posting *domain.JobPosting) []string {
	if posting == nil {
		return []string{}
	}

	seen := make(map[string]bool)
	var keywords []string
	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len([]rune(kw)) < minKeywordLen || stopWords[kw] || seen[kw] {
			return
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	if !strings.EqualFold(posting.RoleTitle, "Unknown") {
		for _, w := range splitWords(posting.RoleTitle) {
			add(w)
		}
	}

	// Skills are vocabulary terms; multi-word phrases stay intact so
	// substring matching against resume text still works.
	for _, skill := range posting.Skills {
		add(skill)
	}

	if !strings.EqualFold(posting.CompanyName, "Unknown") {
		for _, w := range splitWords(posting.CompanyName) {
			add(w)
		}
	}

	descKeywords := ExtractKeywords(posting.Description)
	if len(descKeywords) > maxDescriptionKeywords {
		descKeywords = descKeywords[:maxDescriptionKeywords]
	}
	for _, kw := range descKeywords {
		add(kw)
	}

	if keywords == nil {
		keywords = []string{}
	}
	return keywords
}

// splitWords breaks text on anything that is not a letter, so
// "Engineer (Backend)" yields the same tokens as the extractor would.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
