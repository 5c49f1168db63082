package contract

import (
	"context"
	"time"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, conversation *entity.Conversation) error
	// Touch advances updated_at to ts. GREATEST in the implementation keeps
	// the column monotonically non-decreasing under concurrent turns.
	Touch(ctx context.Context, id uuid.UUID, ts time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
}
