package entity

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is a durable record of a domain event written in the same
// transaction as the state change it describes. A nil PublishedAt means the
// relay has not delivered it yet.
type OutboxEvent struct {
	Id          uuid.UUID
	Topic       string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
