package dto

import (
	"time"

	"legal-ai-be/internal/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	Message        string    `json:"message" validate:"required"`
	// Nonce dedupes client retries. Optional; without it a retried request
	// produces a duplicate message pair.
	Nonce string `json:"nonce,omitempty" validate:"max=128"`
}

type SendMessageResponse struct {
	Response           string          `json:"response"`
	Sources            []entity.Source `json:"sources"`
	UserMessageId      uuid.UUID       `json:"user_message_id"`
	AssistantMessageId uuid.UUID       `json:"assistant_message_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

type MessageResponse struct {
	Id             uuid.UUID       `json:"id"`
	ConversationId uuid.UUID       `json:"conversation_id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	Sources        []entity.Source `json:"sources,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
