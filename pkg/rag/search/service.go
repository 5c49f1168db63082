package search

import (
	"context"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/contract"

	"go.uber.org/zap"
)

// Service runs vector search over the constitutional corpus. It returns the
// raw ranked list; similarity thresholding is presentation policy and lives
// with the callers.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Execute returns up to matchCount sources ranked by similarity descending.
// A failure here is recorded and degraded to an empty list; the chat turn
// must never abort because retrieval was unavailable.
func (s *Service) Execute(
	ctx context.Context,
	articles contract.ArticleRepository,
	queryVector []float32,
	country string,
	matchCount int,
) []entity.Source {
	sources, err := articles.SearchSimilar(ctx, queryVector, country, matchCount)
	if err != nil {
		s.logger.Warn("vector search failed, continuing without sources",
			zap.String("country", country),
			zap.Error(err),
		)
		return []entity.Source{}
	}

	s.logger.Debug("vector search completed",
		zap.String("country", country),
		zap.Int("results", len(sources)),
	)

	if sources == nil {
		sources = []entity.Source{}
	}
	return sources
}

// ExecuteStrict is the standalone search surface: unlike Execute, a failure
// here is the product and is returned to the caller.
func (s *Service) ExecuteStrict(
	ctx context.Context,
	articles contract.ArticleRepository,
	queryVector []float32,
	country string,
	matchCount int,
) ([]entity.Source, error) {
	return articles.SearchSimilar(ctx, queryVector, country, matchCount)
}
