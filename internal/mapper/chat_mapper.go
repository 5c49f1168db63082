package mapper

import (
	"encoding/json"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	return &model.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		Title:     c.Title,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Message Mappers
//
// Sources travel as a serialized JSON column. A failed deserialize is treated
// as no sources rather than failing the read; the column is written by us
// only, so a mismatch means a migration bug, not user input.

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var sources []entity.Source
	if len(msg.Sources) > 0 {
		_ = json.Unmarshal(msg.Sources, &sources)
	}

	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Seq:            msg.Seq,
		Role:           msg.Role,
		Content:        msg.Content,
		Sources:        sources,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) (*model.Message, error) {
	if msg == nil {
		return nil, nil
	}

	var sources datatypes.JSON
	if len(msg.Sources) > 0 {
		raw, err := json.Marshal(msg.Sources)
		if err != nil {
			return nil, err
		}
		sources = datatypes.JSON(raw)
	}

	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Seq:            msg.Seq,
		Role:           msg.Role,
		Content:        msg.Content,
		Sources:        sources,
		CreatedAt:      msg.CreatedAt,
	}, nil
}
