package factory

import (
	"fmt"

	"legal-ai-be/pkg/llm"
	"legal-ai-be/pkg/llm/groq"
	"legal-ai-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured completion backend. Each provider
// receives its own base URL; an empty groqBaseURL selects the public Groq
// endpoint, it is never substituted with the Ollama host.
func NewLLMProvider(providerType, modelName, ollamaBaseURL, groqBaseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		return groq.NewGroqProvider(apiKey, groqBaseURL, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
