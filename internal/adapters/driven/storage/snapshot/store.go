// Package snapshot implements the content store as a JSON snapshot file.
//
// The whole knowledge base is small (tens of chunks), so every write
// persists the full chunk list atomically via a temp file and rename.
// A filesystem watcher reloads the snapshot when it is edited outside
// the process.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/logger"
	"github.com/custodia-labs/revu-cli/internal/postprocessors/chunker"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// chunkRecord is the wire form of one chunk in the snapshot file.
type chunkRecord struct {
	Content     string   `json:"content"`
	ArticleName string   `json:"article_name"`
	ArticleURL  string   `json:"article_url,omitempty"`
	Section     string   `json:"section"`
	Topics      []string `json:"topics"`
	ChunkID     string   `json:"chunk_id"`
	CreatedAt   string   `json:"created_at"`
}

// snapshotFile is the on-disk snapshot layout.
type snapshotFile struct {
	Chunks      []chunkRecord `json:"chunks"`
	LastUpdated string        `json:"last_updated"`
}

// Store is a JSON-snapshot-backed content store.
type Store struct {
	path    string
	chunker *chunker.Processor

	mu      sync.RWMutex
	chunks  []domain.ContentChunk
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a content store backed by the snapshot file at path.
// A missing or unreadable snapshot is seeded with the default article so
// reviews always have guidance to draw on.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: snapshot path is empty", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	s := &Store{
		path:    path,
		chunker: chunker.New(),
		done:    make(chan struct{}),
	}

	if err := s.load(); err != nil {
		logger.Warn("Snapshot load failed: %v (starting empty)", err)
	}

	if len(s.chunks) == 0 {
		if err := s.AddDocument(context.Background(), defaultArticleContent,
			defaultArticleName, defaultArticleURL); err != nil {
			return nil, fmt.Errorf("seeding default article: %w", err)
		}
		logger.Info("Seeded snapshot with default article (%d chunks)", len(s.chunks))
	}

	s.startWatcher()

	return s, nil
}

// AddDocument chunks the article and persists the extended chunk list.
func (s *Store) AddDocument(_ context.Context, content, sourceName, sourceURL string) error {
	newChunks := s.chunker.Process(content, sourceName, sourceURL)
	if len(newChunks) == 0 {
		return fmt.Errorf("%w: no sections found in document", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	combined := make([]domain.ContentChunk, 0, len(s.chunks)+len(newChunks))
	combined = append(combined, s.chunks...)
	combined = append(combined, newChunks...)

	if err := s.persist(combined); err != nil {
		return err
	}

	s.chunks = combined
	return nil
}

// RelevantChunks returns up to maxChunks chunks scoring above zero
// against the keywords, best first. Ties keep insertion order.
func (s *Store) RelevantChunks(_ context.Context, keywords []string, maxChunks int) ([]domain.ContentChunk, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	scored := s.scoreAll(keywords)
	if maxChunks > 0 && len(scored) > maxChunks {
		scored = scored[:maxChunks]
	}

	chunks := make([]domain.ContentChunk, len(scored))
	for i, sc := range scored {
		chunks[i] = sc.Chunk
	}
	return chunks, nil
}

// Search scores chunks against the whitespace-split lowercased query.
func (s *Store) Search(_ context.Context, query string, maxResults int) ([]domain.ScoredChunk, error) {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return []domain.ScoredChunk{}, nil
	}

	scored := s.scoreAll(keywords)
	if maxResults > 0 && len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored, nil
}

// Get retrieves a chunk by ID.
func (s *Store) Get(_ context.Context, chunkID string) (*domain.ContentChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.chunks {
		if s.chunks[i].ID == chunkID {
			chunk := s.chunks[i]
			return &chunk, nil
		}
	}
	return nil, domain.ErrNotFound
}

// All returns every stored chunk in insertion order.
func (s *Store) All(_ context.Context) ([]domain.ContentChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chunks := make([]domain.ContentChunk, len(s.chunks))
	copy(chunks, s.chunks)
	return chunks, nil
}

// Close stops the snapshot watcher.
func (s *Store) Close() error {
	close(s.done)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// scoreAll scores every chunk and returns positive scores, best first.
func (s *Store) scoreAll(keywords []string) []domain.ScoredChunk {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var scored []domain.ScoredChunk
	for i := range s.chunks {
		score := domain.ChunkRelevance(&s.chunks[i], keywords)
		if score > 0 {
			scored = append(scored, domain.ScoredChunk{Chunk: s.chunks[i], Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// load reads the snapshot file into memory. A missing file is not an
// error; it just leaves the store empty for seeding.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParseFailed, err)
	}

	chunks := make([]domain.ContentChunk, 0, len(file.Chunks))
	for _, rec := range file.Chunks {
		createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			createdAt = time.Time{}
		}
		chunks = append(chunks, domain.ContentChunk{
			ID:           rec.ChunkID,
			Content:      rec.Content,
			SourceName:   rec.ArticleName,
			SourceURL:    rec.ArticleURL,
			SectionTitle: rec.Section,
			Topics:       rec.Topics,
			CreatedAt:    createdAt,
		})
	}

	s.mu.Lock()
	s.chunks = chunks
	s.mu.Unlock()
	return nil
}

// persist writes the full chunk list atomically. Callers hold s.mu.
func (s *Store) persist(chunks []domain.ContentChunk) error {
	records := make([]chunkRecord, len(chunks))
	for i, c := range chunks {
		records[i] = chunkRecord{
			Content:     c.Content,
			ArticleName: c.SourceName,
			ArticleURL:  c.SourceURL,
			Section:     c.SectionTitle,
			Topics:      c.Topics,
			ChunkID:     c.ID,
			CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(snapshotFile{
		Chunks:      records,
		LastUpdated: time.Now().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// startWatcher reloads the snapshot when it changes on disk.
// Watching is best effort; the store works without it.
func (s *Store) startWatcher() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Snapshot watcher unavailable: %v", err)
		return
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		logger.Warn("Snapshot watcher unavailable: %v", err)
		watcher.Close()
		return
	}

	s.watcher = watcher
	go s.watchLoop()
}

func (s *Store) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := s.load(); err != nil {
				logger.Warn("Snapshot reload failed: %v", err)
			} else {
				logger.Debug("Snapshot reloaded from %s", s.path)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Snapshot watcher error: %v", err)
		}
	}
}
