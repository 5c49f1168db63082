package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TurnReceipt records a completed turn keyed on (conversation_id, nonce).
// The unique index is what makes retried client requests idempotent.
type TurnReceipt struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_turn_receipts_conversation_nonce,priority:1"`
	Nonce          string         `gorm:"type:varchar(128);not null;uniqueIndex:idx_turn_receipts_conversation_nonce,priority:2"`
	Payload        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (TurnReceipt) TableName() string {
	return "turn_receipts"
}
