package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any text-generation backend
type LLMProvider interface {
	// Chat sends an ordered message sequence to the model and returns the
	// generated answer.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
}
