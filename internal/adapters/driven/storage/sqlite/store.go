package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/revu-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// the session and review-log store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.revu/data/revu.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".revu", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "revu.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// ReviewLogStore returns a ReviewLogStore interface backed by this store.
func (s *Store) ReviewLogStore() driven.ReviewLogStore {
	return &reviewLogStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Session Store ====================

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores or replaces the session for session.UserID.
func (s *sessionStore) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.UserID == "" {
		return domain.ErrInvalidInput
	}

	reviewJSON, err := json.Marshal(session.Review)
	if err != nil {
		return fmt.Errorf("marshalling review: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO sessions
			(user_id, id, user_name, step, review, last_input, message_count, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			id = excluded.id,
			user_name = excluded.user_name,
			step = excluded.step,
			review = excluded.review,
			last_input = excluded.last_input,
			message_count = excluded.message_count,
			started_at = excluded.started_at,
			updated_at = excluded.updated_at
	`, session.UserID, session.ID, session.UserName, string(session.Step),
		string(reviewJSON), session.LastInput, session.MessageCount,
		session.StartedAt, session.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Get retrieves the session for a user.
func (s *sessionStore) Get(ctx context.Context, userID string) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT user_id, id, user_name, step, review, last_input, message_count, started_at, updated_at
		FROM sessions WHERE user_id = ?
	`, userID)

	var session domain.Session
	var step string
	var reviewJSON sql.NullString
	var startedAt, updatedAt sql.NullTime
	if err := row.Scan(&session.UserID, &session.ID, &session.UserName, &step,
		&reviewJSON, &session.LastInput, &session.MessageCount,
		&startedAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	session.Step = domain.ConversationStep(step)

	if reviewJSON.Valid && reviewJSON.String != "" && reviewJSON.String != "null" {
		var review domain.ReviewResult
		if err := json.Unmarshal([]byte(reviewJSON.String), &review); err != nil {
			return nil, fmt.Errorf("unmarshalling review: %w", err)
		}
		session.Review = &review
	}
	if startedAt.Valid {
		session.StartedAt = startedAt.Time
	}
	if updatedAt.Valid {
		session.UpdatedAt = updatedAt.Time
	}

	return &session, nil
}

// Delete removes the session for a user.
func (s *sessionStore) Delete(ctx context.Context, userID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// ==================== Review Log Store ====================

// reviewLogStore implements driven.ReviewLogStore.
type reviewLogStore struct {
	store *Store
}

var _ driven.ReviewLogStore = (*reviewLogStore)(nil)

// Append records an entry.
func (s *reviewLogStore) Append(ctx context.Context, entry *driven.ReviewLogEntry) error {
	if entry == nil || entry.ID == "" {
		return domain.ErrInvalidInput
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO review_log (id, user_id, action, confidence, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.UserID, entry.Action, entry.Confidence, entry.Detail, createdAt)

	if err != nil {
		return fmt.Errorf("appending review log entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *reviewLogStore) Recent(ctx context.Context, limit int) ([]driven.ReviewLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, user_id, action, confidence, detail, created_at
		FROM review_log
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying review log: %w", err)
	}
	defer rows.Close()

	var entries []driven.ReviewLogEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry driven.ReviewLogEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action,
			&entry.Confidence, &entry.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning review log entry: %w", err)
		}
		if createdAt.Valid {
			entry.CreatedAt = createdAt.Time
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review log: %w", err)
	}

	return entries, nil
}
