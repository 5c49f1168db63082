package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	Title string `json:"title" validate:"max=255"`
}

type UpdateConversationRequest struct {
	Id    uuid.UUID `json:"-"`
	Title string    `json:"title" validate:"required,max=255"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ListConversationsResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}
