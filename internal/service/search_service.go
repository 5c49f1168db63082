package service

import (
	"context"
	"strings"

	"legal-ai-be/internal/apperr"
	"legal-ai-be/internal/constant"
	"legal-ai-be/internal/dto"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/embedding"
	"legal-ai-be/pkg/rag/search"

	"go.uber.org/zap"
)

// ISearchService defines the standalone corpus search interface
type ISearchService interface {
	Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error)
}

// searchService exposes vector search directly. Unlike the chat pipeline,
// failures here are returned to the caller rather than degraded.
type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	searchService     *search.Service
	defaultCountry    string
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	defaultCountry string,
	logger *zap.Logger,
) ISearchService {
	if defaultCountry == "" {
		defaultCountry = constant.DefaultCountry
	}
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		searchService:     search.NewService(logger),
		defaultCountry:    defaultCountry,
	}
}

func (s *searchService) Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error) {
	if strings.TrimSpace(request.Query) == "" {
		return nil, apperr.ErrQueryRequired
	}

	country := request.Country
	if country == "" {
		country = s.defaultCountry
	}
	matchCount := request.MatchCount
	if matchCount <= 0 {
		matchCount = constant.SearchMatchCount
	}

	queryVector, err := s.embeddingProvider.Embed(ctx, request.Query)
	if err != nil {
		return nil, apperr.UpstreamEmbedding(err.Error(), err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	results, err := s.searchService.ExecuteStrict(ctx, uow.ArticleRepository(), queryVector, country, matchCount)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeSearch, err.Error(), err)
	}

	return &dto.SearchResponse{Results: results}, nil
}
