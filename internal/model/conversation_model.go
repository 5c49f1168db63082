package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"` // ownership for data isolation
	Title     string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  // advanced explicitly per turn, not by autoUpdateTime
}

func (Conversation) TableName() string {
	return "conversations"
}
