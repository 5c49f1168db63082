package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created,priority:1"`
	// Seq breaks created_at ties: both halves of a turn share one timestamp,
	// so reads order by (created_at, seq) to keep user before assistant.
	Seq       int64          `gorm:"autoIncrement;not null"`
	Role      string         `gorm:"type:varchar(20);not null"`
	Content   string         `gorm:"type:text;not null"`
	Sources   datatypes.JSON `gorm:"type:jsonb"` // null for user messages
	CreatedAt time.Time      `gorm:"not null;index:idx_messages_conversation_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
