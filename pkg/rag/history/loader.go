package history

import (
	"context"

	"legal-ai-be/internal/constant"
	"legal-ai-be/internal/repository/contract"
	"legal-ai-be/internal/repository/specification"
	"legal-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// Loader fetches the trailing conversation window used as model context.
type Loader struct {
	windowSize int
}

func NewLoader() *Loader {
	return &Loader{windowSize: constant.HistoryWindowSize}
}

// Load returns at most the trailing windowSize messages of the conversation
// in ascending chronological order. The query fetches newest-first with a
// limit, then the slice is reversed so the provider sees oldest-first. Seq
// breaks created_at ties so a turn pair never flips order.
func (l *Loader) Load(ctx context.Context, messages contract.MessageRepository, conversationId uuid.UUID) ([]llm.Message, error) {
	records, err := messages.FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "seq", Desc: true},
		specification.Limit{N: l.windowSize},
	)
	if err != nil {
		return nil, err
	}

	window := make([]llm.Message, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		window = append(window, llm.Message{
			Role:    records[i].Role,
			Content: records[i].Content,
		})
	}
	return window, nil
}
