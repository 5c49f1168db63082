package implementation

import (
	"context"
	"errors"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/model"
	"legal-ai-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TurnReceiptRepositoryImpl struct {
	db *gorm.DB
}

func NewTurnReceiptRepository(db *gorm.DB) contract.TurnReceiptRepository {
	return &TurnReceiptRepositoryImpl{db: db}
}

func (r *TurnReceiptRepositoryImpl) Create(ctx context.Context, receipt *entity.TurnReceipt) error {
	m := &model.TurnReceipt{
		Id:             receipt.Id,
		ConversationId: receipt.ConversationId,
		Nonce:          receipt.Nonce,
		Payload:        datatypes.JSON(receipt.Payload),
		CreatedAt:      receipt.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	receipt.CreatedAt = m.CreatedAt
	return nil
}

func (r *TurnReceiptRepositoryImpl) FindByNonce(ctx context.Context, conversationId uuid.UUID, nonce string) (*entity.TurnReceipt, error) {
	var m model.TurnReceipt
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND nonce = ?", conversationId, nonce).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.TurnReceipt{
		Id:             m.Id,
		ConversationId: m.ConversationId,
		Nonce:          m.Nonce,
		Payload:        []byte(m.Payload),
		CreatedAt:      m.CreatedAt,
	}, nil
}

func (r *TurnReceiptRepositoryImpl) DeleteByConversationId(ctx context.Context, conversationId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).Delete(&model.TurnReceipt{}).Error
}
