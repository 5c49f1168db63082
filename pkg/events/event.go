package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract every bus event satisfies.
type Event interface {
	// EventType returns the unique code for this event (e.g. "TURN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic carrier used when replaying outbox rows,
// where the concrete type is only known as a string.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeTurnCompleted       = "TURN_COMPLETED"
	TypeConversationDeleted = "CONVERSATION_DELETED"
)

// NewTurnCompleted describes a committed chat turn. Consumers receive the
// message ids rather than the content so the bus never carries user text.
func NewTurnCompleted(conversationId, userMessageId, assistantMessageId uuid.UUID, sourceCount int, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeTurnCompleted,
		Data: map[string]interface{}{
			"conversation_id":      conversationId.String(),
			"user_message_id":      userMessageId.String(),
			"assistant_message_id": assistantMessageId.String(),
			"source_count":         sourceCount,
		},
		OccurredAt: at,
	}
}

func NewConversationDeleted(conversationId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeConversationDeleted,
		Data: map[string]interface{}{
			"conversation_id": conversationId.String(),
		},
		OccurredAt: at,
	}
}
