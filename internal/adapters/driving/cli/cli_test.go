package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
)

// fakeReviewService records requests and returns a canned result.
type fakeReviewService struct {
	lastReq driving.ReviewRequest
	result  *domain.ReviewResult
	err     error
}

func (f *fakeReviewService) Review(_ context.Context, req driving.ReviewRequest) (*domain.ReviewResult, error) {
	f.lastReq = req
	return f.result, f.err
}

type fakeContentService struct {
	added   []string
	chunks  []domain.ContentChunk
	results []domain.ScoredChunk
}

func (f *fakeContentService) AddArticle(_ context.Context, _, name, _ string) error {
	f.added = append(f.added, name)
	return nil
}

func (f *fakeContentService) Search(_ context.Context, _ string, _ int) ([]domain.ScoredChunk, error) {
	return f.results, nil
}

func (f *fakeContentService) List(_ context.Context) ([]domain.ContentChunk, error) {
	return f.chunks, nil
}

// setupTestServices installs fakes and returns a cleanup restoring nil services.
func setupTestServices(review *fakeReviewService, content *fakeContentService) func() {
	SetServices(Services{Review: review, Content: content})
	return func() {
		SetServices(Services{})
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "revu version")
}

func TestReviewCmd_RequiresArg(t *testing.T) {
	_, err := executeCommand(t, "review")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestReviewCmd_ReviewsTextResume(t *testing.T) {
	review := &fakeReviewService{
		result: &domain.ReviewResult{
			Scoring: domain.ScoringResult{
				ConfidenceScore:  72,
				MatchingKeywords: []string{"python", "sql"},
			},
			Feedback: "Solid resume overall.",
		},
	}
	cleanup := setupTestServices(review, &fakeContentService{})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Product manager, python, sql."), 0o600))

	out, err := executeCommand(t, "review", path, "--job-url", "https://example.com/jobs/1")
	require.NoError(t, err)

	assert.Contains(t, out, "Confidence: 72/100")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "Solid resume overall.")
	assert.Equal(t, "https://example.com/jobs/1", review.lastReq.JobURL)
	assert.Equal(t, "cli", review.lastReq.UserID)
}

func TestReviewCmd_PDFWithoutExtractor(t *testing.T) {
	cleanup := setupTestServices(&fakeReviewService{result: &domain.ReviewResult{}}, &fakeContentService{})
	defer cleanup()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	_, err := executeCommand(t, "review", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdftotext")
}

func TestReviewCmd_NoServiceConfigured(t *testing.T) {
	SetServices(Services{})

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))

	_, err := executeCommand(t, "review", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestContentCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range contentCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "search")
	assert.Contains(t, names, "list")
}

func TestContentAddCmd_UsesFileNameAsDefault(t *testing.T) {
	content := &fakeContentService{}
	cleanup := setupTestServices(&fakeReviewService{}, content)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "interview-guide.md")
	require.NoError(t, os.WriteFile(path, []byte("# Intro\nBody."), 0o600))

	out, err := executeCommand(t, "content", "add", path)
	require.NoError(t, err)

	assert.Contains(t, out, `Added "interview-guide"`)
	require.Len(t, content.added, 1)
	assert.Equal(t, "interview-guide", content.added[0])
}

func TestContentSearchCmd_PrintsResults(t *testing.T) {
	content := &fakeContentService{
		results: []domain.ScoredChunk{
			{
				Chunk: domain.ContentChunk{
					SectionTitle: "Use the Keywords",
					SourceName:   "Customization Guide",
					Topics:       []string{"resume", "keywords"},
				},
				Score: 0.8,
			},
		},
	}
	cleanup := setupTestServices(&fakeReviewService{}, content)
	defer cleanup()

	out, err := executeCommand(t, "content", "search", "keywords")
	require.NoError(t, err)

	assert.Contains(t, out, "Use the Keywords")
	assert.Contains(t, out, "Customization Guide")
	assert.Contains(t, out, "0.80")
}

func TestContentListCmd_EmptyStore(t *testing.T) {
	cleanup := setupTestServices(&fakeReviewService{}, &fakeContentService{})
	defer cleanup()

	out, err := executeCommand(t, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Knowledge base is empty.")
}

func TestServeCmd_RequiresHandler(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

// fakeConfigStore is an in-memory config store for command tests.
type fakeConfigStore struct {
	values map[string]any
	path   string
}

func (f *fakeConfigStore) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfigStore) GetString(key string) string {
	s, _ := f.values[key].(string)
	return s
}

func (f *fakeConfigStore) GetInt(string) int              { return 0 }
func (f *fakeConfigStore) GetBool(string) bool            { return false }
func (f *fakeConfigStore) GetStringSlice(string) []string { return nil }

func (f *fakeConfigStore) Set(key string, value any) error {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	f.values[key] = value
	return nil
}

func (f *fakeConfigStore) Save() error  { return nil }
func (f *fakeConfigStore) Load() error  { return nil }
func (f *fakeConfigStore) Path() string { return f.path }

func TestConfigCmd_SetAndGet(t *testing.T) {
	cfg := &fakeConfigStore{}
	SetServices(Services{Config: cfg})
	defer SetServices(Services{})

	out, err := executeCommand(t, "config", "set", "llm.provider", "openai")
	require.NoError(t, err)
	assert.Contains(t, out, "Set llm.provider")

	out, err = executeCommand(t, "config", "get", "llm.provider")
	require.NoError(t, err)
	assert.Contains(t, out, "openai")
}

func TestConfigCmd_GetUnsetKey(t *testing.T) {
	SetServices(Services{Config: &fakeConfigStore{}})
	defer SetServices(Services{})

	_, err := executeCommand(t, "config", "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigCmd_Path(t *testing.T) {
	SetServices(Services{Config: &fakeConfigStore{path: "/home/u/.revu/config.toml"}})
	defer SetServices(Services{})

	out, err := executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "/home/u/.revu/config.toml")
}

func TestConfigCmd_NoStoreConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := executeCommand(t, "config", "get", "llm.provider")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config store configured")
}
