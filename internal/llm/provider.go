package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider call succeeded but the
// response carried no extractable text
var ErrEmptyResponse = errors.New("provider response did not include any output text")

// ErrNotConfigured is returned when the requested provider has no API key
var ErrNotConfigured = errors.New("provider API key not configured")

// Provider defines the interface for generative-text providers.
// The pipeline depends only on submitting one user-authored prompt and
// getting one text payload back; anything else is provider-internal.
type Provider interface {
	// GenerateText executes a single-turn generation for the given prompt
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "gemini", "openai")
	Name() string
}
