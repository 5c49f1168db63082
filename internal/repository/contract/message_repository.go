package contract

import (
	"context"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
