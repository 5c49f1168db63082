package implementation

import (
	"context"
	"time"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/model"
	"legal-ai-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OutboxRepositoryImpl struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) contract.OutboxRepository {
	return &OutboxRepositoryImpl{db: db}
}

func (r *OutboxRepositoryImpl) Create(ctx context.Context, event *entity.OutboxEvent) error {
	m := &model.OutboxEvent{
		Id:        event.Id,
		Topic:     event.Topic,
		Payload:   datatypes.JSON(event.Payload),
		CreatedAt: event.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.CreatedAt = m.CreatedAt
	return nil
}

func (r *OutboxRepositoryImpl) FindUnpublished(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	var models []*model.OutboxEvent
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	events := make([]*entity.OutboxEvent, len(models))
	for i, m := range models {
		events[i] = &entity.OutboxEvent{
			Id:          m.Id,
			Topic:       m.Topic,
			Payload:     []byte(m.Payload),
			CreatedAt:   m.CreatedAt,
			PublishedAt: m.PublishedAt,
		}
	}
	return events, nil
}

func (r *OutboxRepositoryImpl) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.OutboxEvent{}).
		Where("id = ?", id).
		Update("published_at", at).Error
}
