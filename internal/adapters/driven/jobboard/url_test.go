package jobboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanURL_AddsScheme(t *testing.T) {
	cleaned, err := CleanURL("example.com/jobs/123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/123", cleaned)
}

func TestCleanURL_StripsTrackingParams(t *testing.T) {
	cleaned, err := CleanURL("https://example.com/jobs/1?utm_source=news&ref=feed&gclid=xyz&page=2")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/1?page=2", cleaned)
}

func TestCleanURL_StripsGreenhouseReferral(t *testing.T) {
	cleaned, err := CleanURL("https://boards.greenhouse.io/acme/jobs/42?gh_src=abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/42", cleaned)

	// gh_src survives on other hosts
	cleaned, err = CleanURL("https://example.com/jobs/42?gh_src=abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/jobs/42?gh_src=abc123", cleaned)
}

func TestCleanURL_RejectsEmpty(t *testing.T) {
	_, err := CleanURL("")
	assert.ErrorIs(t, err, errInvalidURL)

	_, err = CleanURL("   ")
	assert.ErrorIs(t, err, errInvalidURL)
}

func TestCompanyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "subdomain tenant", url: "https://acme.greenhouse.io/roles/1", want: "Acme"},
		{name: "hyphenated subdomain", url: "https://acme-corp.workday.com/jobs/1", want: "Acme Corp"},
		{name: "path tenant after skipped subdomain", url: "https://jobs.lever.co/acme-corp/123", want: "Acme Corp"},
		{name: "nothing usable", url: "https://www.example.com/careers/apply", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, companyFromURL(tt.url))
		})
	}
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, "linkedin", strategyFor("www.linkedin.com").platform)
	assert.Equal(t, "greenhouse", strategyFor("boards.greenhouse.io").platform)
	assert.Equal(t, "lever", strategyFor("jobs.lever.co").platform)
	assert.Equal(t, genericPlatform, strategyFor("careers.example.com").platform)
}
