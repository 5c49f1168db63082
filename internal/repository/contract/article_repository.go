package contract

import (
	"context"

	"legal-ai-be/internal/entity"
)

type ArticleRepository interface {
	// SearchSimilar returns up to matchCount passages of the given country's
	// corpus ranked by cosine similarity descending. Similarity is in [0,1];
	// no threshold is applied here.
	SearchSimilar(ctx context.Context, queryVector []float32, country string, matchCount int) ([]entity.Source, error)
	Count(ctx context.Context, country string) (int64, error)
	// CreateBatch inserts pre-embedded provisions during corpus ingest.
	CreateBatch(ctx context.Context, articles []*entity.Article) error
}
