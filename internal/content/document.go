package content

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tokentide/tokentide-api/internal/llm"
	"github.com/tokentide/tokentide-api/internal/logger"
)

// SummarizationThresholdChars is the document size above which the upload is
// condensed by a secondary model call before entering the main prompt
const SummarizationThresholdChars = 5000

// summaryFallback stands in for the document context when summarization fails
// or comes back empty; the pipeline proceeds with it rather than erroring out
// or embedding the oversized original.
const summaryFallback = "Failed to summarize document. Using original content (if within limits)" +
	" or generating without specific document context."

const summarizationPrompt = "Please summarize the following document concisely, focusing on key features," +
	" value propositions, and information relevant for creating marketing and social media content." +
	" The summary should be no more than 500 words.\n\n" +
	"<DOCUMENT_TO_SUMMARIZE>\n%s\n</DOCUMENT_TO_SUMMARIZE>\n\n" +
	"Provide only the summary, without any conversational text or introductions."

// Preprocessor condenses oversized documents before prompt construction
type Preprocessor struct {
	provider  llm.Provider
	threshold int
}

// NewPreprocessor creates a preprocessor backed by the given provider
func NewPreprocessor(provider llm.Provider) *Preprocessor {
	return &Preprocessor{
		provider:  provider,
		threshold: SummarizationThresholdChars,
	}
}

// PrepareDocument returns rawText unchanged when it fits the threshold,
// otherwise the result of exactly one summarization call (no retries).
// A failed or empty summarization resolves to the fixed fallback string.
func (p *Preprocessor) PrepareDocument(ctx context.Context, rawText string) string {
	// The threshold counts characters, not bytes, so multibyte documents are
	// not summarized early
	chars := utf8.RuneCountInString(rawText)
	if chars <= p.threshold {
		return rawText
	}

	logger.Info("Summarizing oversized document", logger.Fields{
		"document_chars": chars,
		"threshold":      p.threshold,
	})

	summary, err := p.provider.GenerateText(ctx, fmt.Sprintf(summarizationPrompt, rawText))
	if err != nil {
		logger.Warn("Document summarization failed, using fallback context", logger.Fields{
			"error": err.Error(),
		})
		return summaryFallback
	}
	if strings.TrimSpace(summary) == "" {
		logger.Warn("Document summarization returned empty text, using fallback context", nil)
		return summaryFallback
	}

	logger.Info("Document summarized", logger.Fields{"summary_chars": len(summary)})
	return summary
}
