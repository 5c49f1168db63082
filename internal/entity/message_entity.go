package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Seq            int64 // insertion order, assigned by the store
	Role           string
	Content        string
	Sources        []Source // populated only for assistant messages
	CreatedAt      time.Time
}
