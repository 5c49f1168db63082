package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutboxEvent struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Topic       string         `gorm:"type:varchar(100);not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	PublishedAt *time.Time     `gorm:"index"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}
