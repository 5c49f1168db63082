package contract

import (
	"context"
	"time"

	"legal-ai-be/internal/entity"

	"github.com/google/uuid"
)

type OutboxRepository interface {
	Create(ctx context.Context, event *entity.OutboxEvent) error
	FindUnpublished(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
}
