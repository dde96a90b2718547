package jobboard

import (
	"net/url"
	"strings"
	"unicode"
)

// trackingParams are query parameters stripped from job URLs before
// fetching. They carry referral tracking state, not posting identity.
var trackingParams = map[string]bool{
	"utm_source":   true,
	"utm_medium":   true,
	"utm_campaign": true,
	"utm_content":  true,
	"utm_term":     true,
	"ref":          true,
	"referer":      true,
	"referrer":     true,
	"source":       true,
	"src":          true,
	"fbclid":       true,
	"gclid":        true,
}

// CleanURL validates a job posting URL and strips tracking parameters.
// A missing scheme defaults to https.
func CleanURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errInvalidURL
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", errInvalidURL
	}
	if parsed.Host == "" {
		return "", errInvalidURL
	}

	query := parsed.Query()
	for param := range query {
		if trackingParams[param] {
			query.Del(param)
		}
	}

	// Greenhouse appends its own referral tracking.
	if strings.Contains(parsed.Host, "greenhouse.io") {
		query.Del("gh_src")
	}

	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// companyFromURL guesses the hiring company from URL structure. ATS
// platforms put the tenant in the subdomain (acme.greenhouse.io) or the
// first path segment (jobs.lever.co/acme/...).
func companyFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	hostSkip := map[string]bool{"www": true, "jobs": true, "careers": true, "apply": true}
	if strings.Count(parsed.Host, ".") >= 2 {
		sub := strings.Split(parsed.Host, ".")[0]
		if !hostSkip[sub] {
			return titleCase(strings.ReplaceAll(sub, "-", " "))
		}
	}

	pathSkip := map[string]bool{"job": true, "jobs": true, "career": true, "careers": true, "apply": true}
	for _, part := range strings.Split(parsed.Path, "/") {
		if len(part) > 2 && !pathSkip[part] {
			part = strings.ReplaceAll(part, "-", " ")
			part = strings.ReplaceAll(part, "_", " ")
			return titleCase(part)
		}
	}

	return ""
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
