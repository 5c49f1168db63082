package implementation

import (
	"context"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/model"
	"legal-ai-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) contract.ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

func (r *ArticleRepositoryImpl) SearchSimilar(ctx context.Context, queryVector []float32, country string, matchCount int) ([]entity.Source, error) {
	if matchCount <= 0 {
		matchCount = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding <=> query) yields the similarity score directly.
	type row struct {
		ArticleNumber string
		ArticleText   string
		ChapterNumber int
		ChapterTitle  string
		Similarity    float64
	}
	var rows []row

	qv := pgvector.NewVector(queryVector)

	err := r.db.WithContext(ctx).
		Model(&model.ConstitutionArticle{}).
		Select("article_number, article_text, chapter_number, chapter_title, 1 - (embedding <=> ?) AS similarity", qv).
		Where("country = ?", country).
		Order("similarity DESC").
		Limit(matchCount).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sources := make([]entity.Source, len(rows))
	for i, res := range rows {
		sources[i] = entity.Source{
			ArticleNumber: res.ArticleNumber,
			ArticleText:   res.ArticleText,
			ChapterNumber: res.ChapterNumber,
			ChapterTitle:  res.ChapterTitle,
			Similarity:    res.Similarity,
		}
	}
	return sources, nil
}

func (r *ArticleRepositoryImpl) CreateBatch(ctx context.Context, articles []*entity.Article) error {
	if len(articles) == 0 {
		return nil
	}

	rows := make([]*model.ConstitutionArticle, len(articles))
	for i, a := range articles {
		rows[i] = &model.ConstitutionArticle{
			Id:            a.Id,
			Country:       a.Country,
			ArticleNumber: a.ArticleNumber,
			ArticleText:   a.ArticleText,
			ChapterNumber: a.ChapterNumber,
			ChapterTitle:  a.ChapterTitle,
			Embedding:     pgvector.NewVector(a.Embedding),
			CreatedAt:     a.CreatedAt,
		}
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ArticleRepositoryImpl) Count(ctx context.Context, country string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ConstitutionArticle{}).
		Where("country = ?", country).
		Count(&count).Error
	return count, err
}
