// Package jobboard fetches job posting URLs and structures them into
// domain.JobPosting records. A registry of platform parsers handles the
// common job boards; a generic fallback covers everything else, so an
// unrecognised platform never fails on its own.
package jobboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.JobPostingFetcher = (*Fetcher)(nil)

// Default fetch configuration.
const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 15 * time.Second

	// DefaultRate is the proactive throttle in requests per second.
	// Job boards are quick to block scrapers.
	DefaultRate = 1.0

	// DefaultBurst allows short bursts above the sustained rate.
	DefaultBurst = 3

	// maxPageBytes caps how much of a page body is read.
	maxPageBytes = 2 << 20

	// userAgent mimics a desktop browser; several boards serve bot
	// user agents an empty shell page.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var errInvalidURL = errors.New("jobboard: invalid URL")

// Fetcher downloads and parses job postings using a shared rate-limited
// HTTP client.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithRateLimit overrides the proactive throttle.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewFetcher creates a job posting fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRate), DefaultBurst),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the posting at rawURL and returns the structured
// record. Network and parse failures are reported inside the record with
// Success=false; the error return is reserved for context cancellation.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.JobPosting, error) {
	cleaned, err := CleanURL(rawURL)
	if err != nil {
		return errorPosting(rawURL, rawURL, genericPlatform, "invalid URL provided"), nil
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return errorPosting(rawURL, cleaned, genericPlatform, "invalid URL provided"), nil
	}

	strat := strategyFor(parsed.Host)
	logger.Debug("jobboard: fetching %s via %s parser", cleaned, strat.platform)

	page, err := f.fetchPage(ctx, cleaned)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("jobboard: fetch failed for %s: %v", cleaned, err)
		return errorPosting(rawURL, cleaned, strat.platform, err.Error()), nil
	}

	title, company, description := strat.parse(cleaned, page)
	if title == "" {
		title = unknownField
	}
	if company == "" {
		company = unknownField
	}

	skills := ExtractSkills(description)
	logger.Debug("jobboard: parsed %q at %q, %d skills", title, company, len(skills))

	return &domain.JobPosting{
		Success:     true,
		RoleTitle:   title,
		CompanyName: company,
		Description: description,
		Skills:      skills,
		Platform:    strat.platform,
		OriginalURL: rawURL,
		CleanedURL:  cleaned,
	}, nil
}

// fetchPage performs a rate-limited GET and returns the page body.
func (f *Fetcher) fetchPage(ctx context.Context, pageURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	return string(body), nil
}

// errorPosting builds the failure record. Title and company carry the
// placeholder so downstream keyword extraction skips them.
func errorPosting(originalURL, cleanedURL, platform, message string) *domain.JobPosting {
	return &domain.JobPosting{
		Success:     false,
		RoleTitle:   unknownField,
		CompanyName: unknownField,
		Platform:    platform,
		OriginalURL: originalURL,
		CleanedURL:  cleanedURL,
		Error:       message,
	}
}
