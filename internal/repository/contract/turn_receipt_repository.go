package contract

import (
	"context"

	"legal-ai-be/internal/entity"

	"github.com/google/uuid"
)

type TurnReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.TurnReceipt) error
	FindByNonce(ctx context.Context, conversationId uuid.UUID, nonce string) (*entity.TurnReceipt, error)
	DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error
}
