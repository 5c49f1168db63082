package mapper

import (
	"testing"
	"time"

	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMessageSourcesRoundTrip(t *testing.T) {
	m := NewChatMapper()

	msg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: uuid.New(),
		Role:           "assistant",
		Content:        "Article 21 covers general fundamental freedoms.",
		Sources: []entity.Source{
			{ArticleNumber: "21", ArticleText: "General fundamental freedoms.", ChapterNumber: 5, ChapterTitle: "Fundamental Human Rights", Similarity: 0.82},
		},
		CreatedAt: time.Now(),
	}

	stored, err := m.MessageToModel(msg)
	require.NoError(t, err)
	require.NotEmpty(t, stored.Sources)

	loaded := m.MessageToEntity(stored)
	require.Len(t, loaded.Sources, 1)
	assert.Equal(t, msg.Sources[0], loaded.Sources[0])
	assert.Equal(t, msg.Content, loaded.Content)
}

func TestUserMessageHasNoSourcesColumn(t *testing.T) {
	m := NewChatMapper()

	stored, err := m.MessageToModel(&entity.Message{
		Id:             uuid.New(),
		ConversationId: uuid.New(),
		Role:           "user",
		Content:        "What are my rights?",
		CreatedAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, stored.Sources)
}

func TestCorruptSourcesColumnReadsAsNone(t *testing.T) {
	m := NewChatMapper()

	loaded := m.MessageToEntity(&model.Message{
		Id:             uuid.New(),
		ConversationId: uuid.New(),
		Role:           "assistant",
		Content:        "answer",
		Sources:        datatypes.JSON([]byte(`{not json`)),
		CreatedAt:      time.Now(),
	})
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Sources)
}
