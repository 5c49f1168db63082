package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"legal-ai-be/pkg/llm"
)

type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []llm.Message  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Model   string      `json:"model"`
	Message llm.Message `json:"message"`
	Done    bool        `json:"done"`
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	model := o.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := ollamaChatRequest{
		Model:    model,
		Messages: history,
		Stream:   false,
		Options: &ollamaOptions{
			Temperature: options.Temperature,
		},
	}
	if options.MaxTokens > 0 {
		reqPayload.Options.NumPredict = options.MaxTokens
	}

	jsonData, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", o.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Message.Content == "" {
		return "", fmt.Errorf("empty message from ollama api")
	}

	return chatResp.Message.Content, nil
}
