package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tokentide/tokentide-api/internal/metrics"
)

const defaultOpenAIModel = "gpt-4o-mini"

// ProviderFactory creates providers based on explicit provider choice
type ProviderFactory struct {
	geminiAPIKey string
	geminiModel  string
	openaiAPIKey string
	cloudWatch   *metrics.Client
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(geminiAPIKey, geminiModel, openaiAPIKey string, cloudWatch *metrics.Client) *ProviderFactory {
	return &ProviderFactory{
		geminiAPIKey: geminiAPIKey,
		geminiModel:  geminiModel,
		openaiAPIKey: openaiAPIKey,
		cloudWatch:   cloudWatch,
	}
}

// GetProvider returns the provider for the given name; Gemini is the default
func (f *ProviderFactory) GetProvider(ctx context.Context, providerName string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case "", providerNameGemini:
		if f.geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini: %w", ErrNotConfigured)
		}
		return NewGeminiProvider(ctx, f.geminiAPIKey, f.geminiModel, f.cloudWatch)

	case providerNameOpenAI:
		if f.openaiAPIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrNotConfigured)
		}
		return NewOpenAIProvider(f.openaiAPIKey, defaultOpenAIModel, f.cloudWatch), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: gemini, openai)", providerName)
	}
}
