package jobboard

import (
	"regexp"
	"strings"
)

// unknownField is the placeholder used when a posting field cannot be
// located. Downstream keyword extraction skips it.
const unknownField = "Unknown"

// parseFunc extracts role title, company name and description text from a
// fetched page. Empty returns mean "not found"; the fetcher substitutes
// placeholders and falls back to full-page text for the description.
type parseFunc func(pageURL, page string) (title, company, description string)

// strategy binds a host pattern to a platform parser.
type strategy struct {
	hostPattern string
	platform    string
	parse       parseFunc
}

// strategies is the parser registry, checked in order against the URL
// host. The generic fallback is applied when nothing matches.
var strategies = []strategy{
	{hostPattern: "linkedin.com", platform: "linkedin", parse: parseLinkedIn},
	{hostPattern: "indeed.com", platform: "indeed", parse: parseIndeed},
	{hostPattern: "glassdoor.com", platform: "glassdoor", parse: parseGeneric},
	{hostPattern: "greenhouse.io", platform: "greenhouse", parse: parseGreenhouse},
	{hostPattern: "lever.co", platform: "lever", parse: parseLever},
	{hostPattern: "workday.com", platform: "workday", parse: parseWorkday},
	{hostPattern: "bamboohr.com", platform: "bamboohr", parse: parseGeneric},
	{hostPattern: "smartrecruiters.com", platform: "smartrecruiters", parse: parseGeneric},
}

// genericPlatform names the fallback strategy.
const genericPlatform = "generic"

// strategyFor selects the parser for a URL host.
func strategyFor(host string) strategy {
	host = strings.ToLower(host)
	for _, s := range strategies {
		if strings.Contains(host, s.hostPattern) {
			return s
		}
	}
	return strategy{platform: genericPlatform, parse: parseGeneric}
}

// Platform-specific extraction patterns.
var (
	h1Tag       = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	pageTitle   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaSite    = regexp.MustCompile(`(?is)<meta[^>]+property="og:site_name"[^>]+content="([^"]*)"`)
	genericRole = regexp.MustCompile(`(?is)<[a-z]+[^>]+(?:class|id)="[^"]*job[-_ ]?title[^"]*"[^>]*>(.*?)</[a-z]+>`)

	linkedinCompany = regexp.MustCompile(`(?is)<[a-z]+[^>]+class="[^"]*company-name[^"]*"[^>]*>(.*?)</[a-z]+>`)
	linkedinDesc    = regexp.MustCompile(`(?is)<div[^>]+class="[^"]*jobs-description[^"]*"[^>]*>(.*?)</div>`)

	indeedTitle   = regexp.MustCompile(`(?is)<[a-z0-9]+[^>]+data-testid="jobsearch-JobInfoHeader-title"[^>]*>(.*?)</[a-z0-9]+>`)
	indeedCompany = regexp.MustCompile(`(?is)<[a-z]+[^>]+data-testid="inlineHeader-companyName"[^>]*>(.*?)</[a-z]+>`)
	indeedDesc    = regexp.MustCompile(`(?is)<div[^>]+(?:data-testid="jobsearch-jobDescriptionText"|id="jobDescriptionText")[^>]*>(.*?)</div>`)

	greenhouseTitle   = regexp.MustCompile(`(?is)<h1[^>]+class="[^"]*app-title[^"]*"[^>]*>(.*?)</h1>`)
	greenhouseCompany = regexp.MustCompile(`(?is)<[a-z]+[^>]+class="[^"]*company-name[^"]*"[^>]*>(.*?)</[a-z]+>`)

	leverTitle   = regexp.MustCompile(`(?is)<h2[^>]+data-qa="posting-name"[^>]*>(.*?)</h2>`)
	leverCompany = regexp.MustCompile(`(?is)<div[^>]+class="[^"]*posting-headline[^"]*"[^>]*>.*?<a[^>]*>(.*?)</a>`)
	leverDesc    = regexp.MustCompile(`(?is)<div[^>]+(?:class="[^"]*section-wrapper[^"]*"|data-qa="job-description")[^>]*>(.*?)</div>`)

	workdayTitle = regexp.MustCompile(`(?is)<h1[^>]+data-automation-id="jobPostingHeader"[^>]*>(.*?)</h1>`)
	workdayDesc  = regexp.MustCompile(`(?is)<div[^>]+data-automation-id="jobPostingDescription"[^>]*>(.*?)</div>`)
)

func parseLinkedIn(_, page string) (string, string, string) {
	title := tagText(page, h1Tag)
	company := tagText(page, linkedinCompany)
	description := descriptionText(page, linkedinDesc)
	return title, company, description
}

func parseIndeed(_, page string) (string, string, string) {
	title := tagText(page, indeedTitle)
	if title == "" {
		title = tagText(page, h1Tag)
	}
	company := tagText(page, indeedCompany)
	description := descriptionText(page, indeedDesc)
	return title, company, description
}

func parseGreenhouse(pageURL, page string) (string, string, string) {
	title := tagText(page, greenhouseTitle)
	if title == "" {
		title = tagText(page, h1Tag)
	}

	company := tagText(page, greenhouseCompany)
	if company == "" {
		// Greenhouse titles follow "Role at Company".
		if full := tagText(page, pageTitle); strings.Contains(full, " at ") {
			parts := strings.Split(full, " at ")
			company = strings.TrimSpace(parts[len(parts)-1])
		}
	}
	if company == "" {
		company = companyFromURL(pageURL)
	}

	return title, company, stripHTML(page)
}

func parseLever(_, page string) (string, string, string) {
	title := tagText(page, leverTitle)
	if title == "" {
		title = tagText(page, h1Tag)
	}
	company := tagText(page, leverCompany)
	description := descriptionText(page, leverDesc)
	return title, company, description
}

func parseWorkday(pageURL, page string) (string, string, string) {
	title := tagText(page, workdayTitle)
	if title == "" {
		title = tagText(page, h1Tag)
	}
	company := companyFromURL(pageURL)
	description := descriptionText(page, workdayDesc)
	return title, company, description
}

func parseGeneric(pageURL, page string) (string, string, string) {
	title := tagText(page, h1Tag)
	if title == "" {
		title = tagText(page, genericRole)
	}
	if title == "" {
		title = tagText(page, pageTitle)
	}

	company := companyFromURL(pageURL)
	if company == "" {
		company = tagText(page, metaSite)
	}

	return title, company, stripHTML(page)
}

// descriptionText extracts a scoped description block, falling back to
// the full stripped page when the platform markup is absent.
func descriptionText(page string, re *regexp.Regexp) string {
	matches := re.FindStringSubmatch(page)
	if len(matches) > 1 {
		if text := stripHTML(matches[1]); text != "" {
			return text
		}
	}
	return stripHTML(page)
}
