package jobboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGreenhouse(t *testing.T) {
	page := `<html><head><title>Senior Product Manager at Acme Corp</title></head>
<body><h1 class="app-title">Senior Product Manager</h1>
<div class="content"><p>You will own the roadmap and run user research.</p></div>
</body></html>`

	title, company, description := parseGreenhouse("https://boards.greenhouse.io/acmecorp/jobs/1", page)

	assert.Equal(t, "Senior Product Manager", title)
	assert.Equal(t, "Acme Corp", company)
	assert.Contains(t, description, "own the roadmap")
}

func TestParseLever(t *testing.T) {
	page := `<html><body>
<div class="posting-headline"><a href="/acme">Acme</a><h2 data-qa="posting-name">Data Analyst</h2></div>
<div class="section-wrapper"><p>SQL and Python required.</p></div>
</body></html>`

	title, company, description := parseLever("https://jobs.lever.co/acme/1", page)

	assert.Equal(t, "Data Analyst", title)
	assert.Equal(t, "Acme", company)
	assert.Contains(t, description, "SQL and Python required.")
}

func TestParseWorkday_CompanyFromSubdomain(t *testing.T) {
	page := `<html><body>
<h1 data-automation-id="jobPostingHeader">Platform Engineer</h1>
<div data-automation-id="jobPostingDescription">Kubernetes and AWS experience.</div>
</body></html>`

	title, company, description := parseWorkday("https://acme-corp.workday.com/en-US/jobs/1", page)

	assert.Equal(t, "Platform Engineer", title)
	assert.Equal(t, "Acme Corp", company)
	assert.Contains(t, description, "Kubernetes and AWS")
}

func TestParseIndeed(t *testing.T) {
	page := `<html><body>
<h1 data-testid="jobsearch-JobInfoHeader-title">Growth Marketer</h1>
<div data-testid="inlineHeader-companyName">Acme</div>
<div id="jobDescriptionText"><p>Run A/B testing programs.</p></div>
</body></html>`

	title, company, description := parseIndeed("https://www.indeed.com/viewjob?jk=1", page)

	assert.Equal(t, "Growth Marketer", title)
	assert.Equal(t, "Acme", company)
	assert.Contains(t, description, "A/B testing")
}

func TestParseLinkedIn(t *testing.T) {
	page := `<html><body>
<h1 class="t-24">Staff Engineer</h1>
<span class="jobs-unified-top-card__company-name">Acme</span>
<div class="jobs-description-content__text"><p>Distributed systems in Go.</p></div>
</body></html>`

	title, company, description := parseLinkedIn("https://www.linkedin.com/jobs/view/1", page)

	assert.Equal(t, "Staff Engineer", title)
	assert.Equal(t, "Acme", company)
	assert.Contains(t, description, "Distributed systems")
}

func TestParseGeneric_FallsBackToPageTitle(t *testing.T) {
	page := `<html><head><title>Product Designer | Careers</title>
<meta property="og:site_name" content="Acme Careers"></head>
<body><p>Design things.</p></body></html>`

	title, company, description := parseGeneric("https://www.example.com/careers/apply", page)

	assert.Equal(t, "Product Designer | Careers", title)
	assert.Equal(t, "Acme Careers", company)
	assert.Contains(t, description, "Design things.")
}

func TestStripHTML(t *testing.T) {
	page := `<html><head><style>.x{color:red}</style><script>var a=1;</script></head>
<body><nav>Home | Jobs</nav><h1>Title</h1><p>First &amp; second.</p><p>Third.</p></body></html>`

	text := stripHTML(page)

	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "var a=1")
	assert.NotContains(t, text, "Home | Jobs")
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "First & second.")
}

func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills("We want Python and SQL, agile mindset")
	assert.Equal(t, []string{"agile", "SQL", "Python"}, skills)

	assert.Nil(t, ExtractSkills(""))
}
