package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/tokentide/tokentide-api/internal/metrics"
)

const (
	providerNameOpenAI = "openai"
)

// OpenAIProvider implements the Provider interface using OpenAI's Responses API
type OpenAIProvider struct {
	client     *openai.Client
	model      string
	metrics    *metrics.SentryMetrics
	cloudWatch *metrics.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey, model string, cloudWatch *metrics.Client) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client:     &client,
		model:      model,
		metrics:    metrics.NewSentryMetrics(),
		cloudWatch: cloudWatch,
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// GenerateText executes a single-turn, single-message generation request
func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	transaction := sentry.StartTransaction(ctx, "openai.generate_text")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := responses.ResponseNewParams{
		Model: p.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}

	span := transaction.StartChild("openai.api_call")
	resp, err := p.client.Responses.New(ctx, params)
	span.Finish()

	if err != nil {
		log.Printf("❌ OPENAI REQUEST FAILED after %v: %v", time.Since(startTime), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	text := resp.OutputText()
	if strings.TrimSpace(text) == "" {
		transaction.SetTag("success", "false")
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	if resp.Usage.TotalTokens > 0 {
		log.Printf("📊 OPENAI USAGE: input=%d, output=%d, total=%d",
			resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)

		p.metrics.RecordTokenUsage(ctx, p.model,
			int(resp.Usage.TotalTokens),
			int(resp.Usage.InputTokens),
			int(resp.Usage.OutputTokens))
		if p.cloudWatch != nil {
			p.cloudWatch.RecordTokenUsage(p.model,
				int(resp.Usage.TotalTokens),
				int(resp.Usage.InputTokens),
				int(resp.Usage.OutputTokens))
		}
	}

	transaction.SetTag("success", "true")
	log.Printf("✅ OPENAI GENERATION COMPLETED in %v (%d chars)", time.Since(startTime), len(text))

	return text, nil
}
