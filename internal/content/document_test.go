package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocument(chars int) string {
	return strings.Repeat("a", chars)
}

func TestPrepareDocument_UnderThresholdPassesThrough(t *testing.T) {
	stub := &stubProvider{}
	pre := NewPreprocessor(stub)

	doc := makeDocument(SummarizationThresholdChars)
	got := pre.PrepareDocument(context.Background(), doc)

	assert.Equal(t, doc, got)
	assert.Zero(t, stub.calls, "documents at or under the threshold must not be summarized")
}

func TestPrepareDocument_ThresholdCountsCharactersNotBytes(t *testing.T) {
	stub := &stubProvider{}
	pre := NewPreprocessor(stub)

	// Two bytes per rune, so byte length is double the threshold
	doc := strings.Repeat("é", SummarizationThresholdChars)
	got := pre.PrepareDocument(context.Background(), doc)

	assert.Equal(t, doc, got)
	assert.Zero(t, stub.calls, "multibyte documents within the character limit must not be summarized")
}

func TestPrepareDocument_OverThresholdSummarizesOnce(t *testing.T) {
	stub := &stubProvider{responses: []string{"A concise summary."}}
	pre := NewPreprocessor(stub)

	doc := makeDocument(SummarizationThresholdChars + 1)
	got := pre.PrepareDocument(context.Background(), doc)

	assert.Equal(t, "A concise summary.", got)
	require.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.prompts[0], "<DOCUMENT_TO_SUMMARIZE>\n"+doc+"\n</DOCUMENT_TO_SUMMARIZE>")
	assert.Contains(t, stub.prompts[0], "no more than 500 words")
}

func TestPrepareDocument_FallbackOnProviderError(t *testing.T) {
	stub := &stubProvider{errs: []error{errors.New("rate limited")}}
	pre := NewPreprocessor(stub)

	got := pre.PrepareDocument(context.Background(), makeDocument(SummarizationThresholdChars+1))

	assert.Equal(t, summaryFallback, got)
	assert.Equal(t, 1, stub.calls, "summarization is attempted exactly once, no retries")
}

func TestPrepareDocument_FallbackOnBlankSummary(t *testing.T) {
	stub := &stubProvider{responses: []string{"  \n\t"}}
	pre := NewPreprocessor(stub)

	got := pre.PrepareDocument(context.Background(), makeDocument(SummarizationThresholdChars+1))

	assert.Equal(t, summaryFallback, got)
}
