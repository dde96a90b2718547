package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestKeywordsForMatching_NilPosting(t *testing.T) {
	assert.Empty(t, KeywordsForMatching(nil))
}

func TestKeywordsForMatching_CombinesAllSources(t *testing.T) {
	posting := &domain.JobPosting{
		Success:     true,
		RoleTitle:   "Senior Product Manager",
		CompanyName: "Acme Corp",
		Description: "python python sql",
		Skills:      []string{"SQL", "product management"},
	}

	keywords := KeywordsForMatching(posting)

	// Title, skills, company, then description keywords, first-seen order.
	assert.Equal(t, []string{
		"senior", "product", "manager",
		"sql", "product management",
		"acme", "corp",
		"python",
	}, keywords)
}

func TestKeywordsForMatching_SkipsUnknownPlaceholders(t *testing.T) {
	posting := &domain.JobPosting{
		Success:     true,
		RoleTitle:   "Unknown",
		CompanyName: "Unknown",
		Description: "golang backend golang",
	}

	keywords := KeywordsForMatching(posting)

	assert.Equal(t, []string{"golang", "backend"}, keywords)
	assert.NotContains(t, keywords, "unknown")
}

func TestKeywordsForMatching_Deduplicates(t *testing.T) {
	posting := &domain.JobPosting{
		Success:     true,
		RoleTitle:   "Python Developer",
		CompanyName: "Python Software Foundation",
		Description: "python experience required",
		Skills:      []string{"Python"},
	}

	keywords := KeywordsForMatching(posting)

	count := 0
	for _, kw := range keywords {
		if kw == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestKeywordsForMatching_DropsShortAndStopWords(t *testing.T) {
	posting := &domain.JobPosting{
		Success:   true,
		RoleTitle: "VP of Engineering",
	}

	keywords := KeywordsForMatching(posting)

	// "VP" is under three letters, "of" is a stop word.
	assert.Equal(t, []string{"engineering"}, keywords)
}
