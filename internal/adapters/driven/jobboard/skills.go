package jobboard

import (
	"strings"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

// ExtractSkills scans a description for skill vocabulary terms using a
// case-insensitive substring test. Terms are returned in vocabulary
// order, in their canonical casing.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, skill := range domain.SkillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
