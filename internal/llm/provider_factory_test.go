package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentide/tokentide-api/internal/metrics"
)

func TestGetProvider_GeminiRequiresKey(t *testing.T) {
	factory := NewProviderFactory("", "gemini-2.5-flash", "", nil)

	for _, name := range []string{"", "gemini"} {
		_, err := factory.GetProvider(context.Background(), name)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
}

func TestGetProvider_OpenAIRequiresKey(t *testing.T) {
	factory := NewProviderFactory("gk", "gemini-2.5-flash", "", nil)

	_, err := factory.GetProvider(context.Background(), "openai")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGetProvider_OpenAI(t *testing.T) {
	factory := NewProviderFactory("", "gemini-2.5-flash", "ok", nil)

	provider, err := factory.GetProvider(context.Background(), "openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProvider_NameIsCaseInsensitive(t *testing.T) {
	factory := NewProviderFactory("", "gemini-2.5-flash", "ok", nil)

	provider, err := factory.GetProvider(context.Background(), "OpenAI")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProvider_Unknown(t *testing.T) {
	factory := NewProviderFactory("gk", "gemini-2.5-flash", "ok", nil)

	_, err := factory.GetProvider(context.Background(), "claude")
	require.Error(t, err)
	assert.EqualError(t, err, "unknown provider: claude (allowed: gemini, openai)")
}

func TestGetProvider_CarriesMetricsClients(t *testing.T) {
	cloudWatch, err := metrics.NewClient(context.Background(), "test")
	require.NoError(t, err)

	factory := NewProviderFactory("", "gemini-2.5-flash", "ok", cloudWatch)

	provider, err := factory.GetProvider(context.Background(), "openai")
	require.NoError(t, err)

	openaiProvider, ok := provider.(*OpenAIProvider)
	require.True(t, ok)
	assert.Same(t, cloudWatch, openaiProvider.cloudWatch)
	assert.NotNil(t, openaiProvider.metrics)
}
