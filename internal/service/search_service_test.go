package service

import (
	"context"
	"errors"
	"testing"

	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchRequiresQuery(t *testing.T) {
	svc := NewSearchService(&fakeUowFactory{uow: &fakeUow{}}, &fakeEmbeddingProvider{}, "ghana", zap.NewNop())

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "  "})
	assert.ErrorIs(t, err, apperr.ErrQueryRequired)
}

func TestSearchReturnsRankedResults(t *testing.T) {
	uow := &fakeUow{
		searchSources: []entity.Source{
			{ArticleNumber: "12", Similarity: 0.9},
			{ArticleNumber: "33", Similarity: 0.1},
		},
	}
	svc := NewSearchService(&fakeUowFactory{uow: uow}, &fakeEmbeddingProvider{vector: []float32{0.5}}, "ghana", zap.NewNop())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "personal liberty"})
	require.NoError(t, err)

	// The standalone endpoint applies no display threshold.
	assert.Len(t, res.Results, 2)
}

func TestSearchSurfacesFailures(t *testing.T) {
	t.Run("embedding failure", func(t *testing.T) {
		embedder := &fakeEmbeddingProvider{err: errors.New(`{"error":{"message":"invalid api key"}}`)}
		svc := NewSearchService(&fakeUowFactory{uow: &fakeUow{}}, embedder, "ghana", zap.NewNop())

		_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "liberty"})
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.CodeUpstreamEmbedding, appErr.Code)
		assert.Contains(t, appErr.Message, "invalid api key")
	})

	t.Run("search failure is fatal here", func(t *testing.T) {
		uow := &fakeUow{searchErr: errors.New("index unavailable")}
		svc := NewSearchService(&fakeUowFactory{uow: uow}, &fakeEmbeddingProvider{vector: []float32{0.5}}, "ghana", zap.NewNop())

		_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "liberty"})
		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.CodeSearch, appErr.Code)
	})
}
