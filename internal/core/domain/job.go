package domain

// JobPosting is the structured form of a fetched job advertisement.
// It is produced by a platform-specific parser and treated as read-only
// input by the scoring pipeline.
type JobPosting struct {
	// Success reports whether fetching and parsing succeeded.
	// When false, only Error and the URL fields are meaningful.
	Success bool

	// RoleTitle is the advertised position, "Unknown" when not found.
	RoleTitle string

	// CompanyName is the hiring company, "Unknown" when not found.
	CompanyName string

	// Description is the full posting body as plain text.
	Description string

	// Skills are vocabulary terms found in the description.
	Skills []string

	// Platform identifies which parser strategy produced this record.
	Platform string

	// OriginalURL is the URL as supplied by the user.
	OriginalURL string

	// CleanedURL is the URL after tracking parameters were stripped.
	CleanedURL string

	// Error describes the failure when Success is false.
	Error string
}

// SkillVocabulary is the fixed skill/keyword vocabulary scanned over job
// descriptions. Matching is a case-insensitive substring test; terms are
// reported in their canonical casing below.
var SkillVocabulary = []string{
	// Product management
	"product management", "product strategy", "roadmap", "user research",
	"data analysis", "A/B testing", "metrics", "KPIs", "stakeholder management",
	"cross-functional", "agile", "scrum", "user experience", "UX", "UI",
	"market research", "competitive analysis", "go-to-market", "GTM",

	// Technical
	"SQL", "Python", "JavaScript", "React", "API", "REST", "GraphQL",
	"machine learning", "ML", "AI", "data science", "analytics",
	"cloud", "AWS", "Azure", "GCP", "docker", "kubernetes",

	// Soft skills
	"leadership", "communication", "collaboration", "problem solving",
	"critical thinking", "strategic thinking", "decision making",

	// Seniority markers
	"junior", "senior", "lead", "principal", "director", "VP", "head of",
	"manager", "associate", "intern", "entry level", "experienced",
}
