package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
