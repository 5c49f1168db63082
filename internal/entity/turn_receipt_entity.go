package entity

import (
	"time"

	"github.com/google/uuid"
)

// TurnReceipt dedupes retried chat turns. The payload carries the serialized
// turn result so a replayed nonce can answer without re-running the pipeline.
type TurnReceipt struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Nonce          string
	Payload        []byte
	CreatedAt      time.Time
}
