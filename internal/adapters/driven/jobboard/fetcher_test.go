package jobboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(WithRateLimit(1000, 1000))
}

func TestFetch_GenericPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
<h1>Senior Product Manager</h1>
<p>Own the roadmap. Python and SQL a plus.</p>
</body></html>`))
	}))
	defer server.Close()

	posting, err := newTestFetcher().Fetch(context.Background(), server.URL+"/jobs/123?utm_source=news&id=9")
	require.NoError(t, err)
	require.NotNil(t, posting)

	assert.True(t, posting.Success)
	assert.Empty(t, posting.Error)
	assert.Equal(t, "Senior Product Manager", posting.RoleTitle)
	assert.Equal(t, genericPlatform, posting.Platform)
	assert.Contains(t, posting.Description, "Own the roadmap.")
	assert.Contains(t, posting.Skills, "roadmap")
	assert.Contains(t, posting.Skills, "Python")
	assert.Contains(t, posting.Skills, "SQL")
	assert.Equal(t, server.URL+"/jobs/123?utm_source=news&id=9", posting.OriginalURL)
	assert.Equal(t, server.URL+"/jobs/123?id=9", posting.CleanedURL)
}

func TestFetch_HTTPErrorReportedInRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	posting, err := newTestFetcher().Fetch(context.Background(), server.URL+"/gone")
	require.NoError(t, err)
	require.NotNil(t, posting)

	assert.False(t, posting.Success)
	assert.Contains(t, posting.Error, "status 404")
	assert.Equal(t, "Unknown", posting.RoleTitle)
	assert.Equal(t, "Unknown", posting.CompanyName)
}

func TestFetch_UnreachableHostReportedInRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	posting, err := newTestFetcher().Fetch(context.Background(), url)
	require.NoError(t, err)
	require.NotNil(t, posting)
	assert.False(t, posting.Success)
	assert.NotEmpty(t, posting.Error)
}

func TestFetch_InvalidURLReportedInRecord(t *testing.T) {
	posting, err := newTestFetcher().Fetch(context.Background(), "https://%zz")
	require.NoError(t, err)
	require.NotNil(t, posting)

	assert.False(t, posting.Success)
	assert.Equal(t, "invalid URL provided", posting.Error)
}

func TestFetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	posting, err := newTestFetcher().Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, posting)
}

func TestFetch_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><h1>Role</h1></html>"))
	}))
	defer server.Close()

	_, err := newTestFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}
