package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := &domain.Session{
		ID:     "sess-1",
		UserID: "user-1",
		Step:   domain.StepSummarySent,
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)

	// Returned session is a copy; mutating it does not affect the store.
	got.Step = domain.StepFinalAdvice
	again, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSummarySent, again.Step)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_SaveValidation(t *testing.T) {
	store := NewSessionStore()

	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Session{}), domain.ErrInvalidInput)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "a", UserID: "user-1"}))
	require.NoError(t, store.Delete(ctx, "user-1"))

	_, err := store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "ghost"))
}
