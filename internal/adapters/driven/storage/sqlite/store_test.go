package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	sessions := newTestStore(t).SessionStore()
	ctx := context.Background()

	session := &domain.Session{
		ID:       "sess-1",
		UserID:   "+15551234567",
		UserName: "Sam",
		Step:     domain.StepSummarySent,
		Review: &domain.ReviewResult{
			Scoring:  domain.ScoringResult{ConfidenceScore: 65},
			Feedback: "solid",
		},
		MessageCount: 2,
		StartedAt:    time.Now().UTC().Truncate(time.Second),
		UpdatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, sessions.Save(ctx, session))

	got, err := sessions.Get(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, domain.StepSummarySent, got.Step)
	assert.Equal(t, 2, got.MessageCount)
	require.NotNil(t, got.Review)
	assert.Equal(t, 65, got.Review.Scoring.ConfidenceScore)

	require.NoError(t, sessions.Delete(ctx, "+15551234567"))

	_, err = sessions.Get(ctx, "+15551234567")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_SaveReplaces(t *testing.T) {
	sessions := newTestStore(t).SessionStore()
	ctx := context.Background()

	first := &domain.Session{ID: "a", UserID: "user-1", Step: domain.StepSummarySent}
	require.NoError(t, sessions.Save(ctx, first))

	second := &domain.Session{ID: "b", UserID: "user-1", Step: domain.StepFinalAdvice}
	require.NoError(t, sessions.Save(ctx, second))

	got, err := sessions.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, domain.StepFinalAdvice, got.Step)
}

func TestSessionStore_SaveValidation(t *testing.T) {
	sessions := newTestStore(t).SessionStore()

	err := sessions.Save(context.Background(), &domain.Session{ID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionStore_DeleteMissingIsNotError(t *testing.T) {
	sessions := newTestStore(t).SessionStore()

	assert.NoError(t, sessions.Delete(context.Background(), "ghost"))
}

func TestReviewLogStore_AppendAndRecent(t *testing.T) {
	log := newTestStore(t).ReviewLogStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"resume_received", "review_completed", "review_failed"} {
		require.NoError(t, log.Append(ctx, &driven.ReviewLogEntry{
			ID:         action,
			UserID:     "user-1",
			Action:     action,
			Confidence: i * 10,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "review_failed", entries[0].Action)
	assert.Equal(t, "review_completed", entries[1].Action)
}

func TestReviewLogStore_AppendValidation(t *testing.T) {
	log := newTestStore(t).ReviewLogStore()

	err := log.Append(context.Background(), &driven.ReviewLogEntry{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
