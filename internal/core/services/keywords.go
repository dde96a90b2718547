package services

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords are common English function words excluded from keyword
// extraction. Fixed configuration: extending it changes every score.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "a": true, "an": true, "as": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "you": true,
	"they": true, "them": true, "your": true, "his": true, "her": true,
	"its": true, "our": true, "their": true, "is": true, "am": true,
}

// minKeywordLen is the minimum token length kept by the extractor.
const minKeywordLen = 3

// ExtractKeywords turns free text into a frequency-ranked keyword list.
//
// Tokens are maximal runs of 3+ letters (digits and punctuation act as
// separators), lowercased, with stop words removed. The result contains
// each surviving token once, ordered by descending frequency; ties keep
// first-occurrence order. Empty input yields an empty list.
func ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string

	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) < minKeywordLen || stopWords[w] {
			return
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	// Stable sort by descending frequency: insertion order breaks ties.
	keywords := make([]string, len(order))
	copy(keywords, order)
	sort.SliceStable(keywords, func(i, j int) bool {
		return counts[keywords[i]] > counts[keywords[j]]
	})

	return keywords
}
