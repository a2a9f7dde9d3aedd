package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/tokentide/tokentide-api/internal/metrics"
	"github.com/tokentide/tokentide-api/internal/observability"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	geminiUserRole     = "user"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client     *genai.Client
	model      string
	metrics    *metrics.SentryMetrics
	cloudWatch *metrics.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey, model string, cloudWatch *metrics.Client) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		model:      model,
		metrics:    metrics.NewSentryMetrics(),
		cloudWatch: cloudWatch,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// GenerateText executes a single-turn, single-message generation request
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	transaction := sentry.StartTransaction(ctx, "gemini.generate_text")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("provider", providerNameGemini)

	contents := []*genai.Content{
		{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	span := transaction.StartChild("gemini.api_call")
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	span.Finish()

	if err != nil {
		log.Printf("❌ GEMINI REQUEST FAILED after %v: %v", time.Since(startTime), err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := extractText(result)
	if strings.TrimSpace(text) == "" {
		transaction.SetTag("success", "false")
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	if result.UsageMetadata != nil {
		cost := observability.CalculateGeminiCost(p.model,
			result.UsageMetadata.PromptTokenCount,
			result.UsageMetadata.CandidatesTokenCount)
		log.Printf("📊 GEMINI USAGE: input=%d, output=%d, total=%d, cost=%s",
			result.UsageMetadata.PromptTokenCount,
			result.UsageMetadata.CandidatesTokenCount,
			result.UsageMetadata.TotalTokenCount,
			observability.FormatCost(cost))

		p.metrics.RecordTokenUsage(ctx, p.model,
			int(result.UsageMetadata.TotalTokenCount),
			int(result.UsageMetadata.PromptTokenCount),
			int(result.UsageMetadata.CandidatesTokenCount))
		if p.cloudWatch != nil {
			p.cloudWatch.RecordTokenUsage(p.model,
				int(result.UsageMetadata.TotalTokenCount),
				int(result.UsageMetadata.PromptTokenCount),
				int(result.UsageMetadata.CandidatesTokenCount))
		}
	}

	transaction.SetTag("success", "true")
	log.Printf("✅ GEMINI GENERATION COMPLETED in %v (%d chars)", time.Since(startTime), len(text))

	return text, nil
}

// extractText pulls the plain-text payload out of a Gemini response without
// assuming more shape than "candidates carrying text parts"
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
