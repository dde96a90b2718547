package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestContentService_AddArticle_Validation(t *testing.T) {
	svc := NewContentService(&fakeContentStore{})

	err := svc.AddArticle(context.Background(), "", "name", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.AddArticle(context.Background(), "body", "  ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.AddArticle(context.Background(), "body", "name", "")
	assert.NoError(t, err)
}

func TestContentService_Search_EmptyQuery(t *testing.T) {
	svc := NewContentService(&fakeContentStore{})

	results, err := svc.Search(context.Background(), "   ", 5)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestContentService_List(t *testing.T) {
	store := &fakeContentStore{chunks: []domain.ContentChunk{
		{ID: "a_0"}, {ID: "a_1"},
	}}
	svc := NewContentService(store)

	chunks, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "a_0", chunks[0].ID)
}
