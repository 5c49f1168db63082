package prompt

import (
	"fmt"
	"strings"

	"legal-ai-be/internal/constant"
	"legal-ai-be/internal/entity"
	"legal-ai-be/pkg/llm"
)

// Builder assembles the ordered message list sent to the completion
// provider: system prompt first, then the history window ascending,
// then the current user message last.
type Builder struct {
	systemPrompt string
}

func NewBuilder(systemPrompt string) *Builder {
	if systemPrompt == "" {
		systemPrompt = constant.ChatSystemPromptV1
	}
	return &Builder{systemPrompt: systemPrompt}
}

// Build produces the provider payload for one turn. Sources, when present,
// are rendered into a grounding block appended to the system prompt. When
// retrieval returned nothing the system prompt is sent as-is and the model
// answers from general knowledge.
func (b *Builder) Build(sources []entity.Source, history []llm.Message, userMessage string) []llm.Message {
	system := b.systemPrompt
	if block := renderGrounding(sources); block != "" {
		system = system + "\n\n" + block
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    constant.MessageRoleSystem,
		Content: system,
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    constant.MessageRoleUser,
		Content: userMessage,
	})
	return messages
}

func renderGrounding(sources []entity.Source) string {
	if len(sources) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Relevant constitutional provisions:\n")
	for _, src := range sources {
		sb.WriteString(fmt.Sprintf("\n[Article %s", src.ArticleNumber))
		if src.ChapterTitle != "" {
			sb.WriteString(fmt.Sprintf(", Chapter %d: %s", src.ChapterNumber, src.ChapterTitle))
		}
		sb.WriteString("]\n")
		sb.WriteString(src.ArticleText)
		sb.WriteString("\n")
	}
	sb.WriteString("\nGround your answer in the provisions above and cite article numbers where applicable.")
	return sb.String()
}
