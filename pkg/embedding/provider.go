package embedding

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyInput guards the provider boundary: embedding whitespace is always
// a caller bug, not a provider failure.
var ErrEmptyInput = errors.New("embedding input is empty")

// EmbeddingProvider converts free text into a fixed-dimension vector.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ValidateInput is shared by all providers.
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}
