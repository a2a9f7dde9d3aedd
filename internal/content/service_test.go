package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider scripts one response (or error) per expected provider call
type stubProvider struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *stubProvider) GenerateText(_ context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)

	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("stub: unexpected call")
}

func (s *stubProvider) Name() string { return "stub" }

func TestService_Generate_HappyPath(t *testing.T) {
	stub := &stubProvider{responses: []string{"1. #foo\n2. #defi\n"}}
	svc := NewService(stub, Options{})

	items, err := svc.Generate(context.Background(), &GenerateRequest{
		ContentType: ContentTypeHashtag,
		TokenName:   "Foo",
		Niche:       "DeFi",
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, GeneratedItem{ID: "1", Type: ContentTypeHashtag, Content: "#foo"}, items[0])
	assert.Equal(t, GeneratedItem{ID: "2", Type: ContentTypeHashtag, Content: "#defi"}, items[1])
	assert.Equal(t, 1, stub.calls, "exactly one provider call for the document-less path")
}

func TestService_Generate_ValidationGating(t *testing.T) {
	tests := []struct {
		name    string
		req     *GenerateRequest
		missing []string
	}{
		{
			name:    "missing niche",
			req:     &GenerateRequest{ContentType: ContentTypeTweet, TokenName: "Foo"},
			missing: []string{"niche"},
		},
		{
			name:    "missing everything",
			req:     &GenerateRequest{},
			missing: []string{"contentType", "tokenName", "niche"},
		},
		{
			name:    "document path skips manual fields",
			req:     &GenerateRequest{DocumentContent: "docs"},
			missing: []string{"contentType"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubProvider{}
			svc := NewService(stub, Options{})

			items, err := svc.Generate(context.Background(), tt.req)

			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.missing, ve.Missing)
			assert.Nil(t, items)
			assert.Zero(t, stub.calls, "invalid requests must trigger zero provider calls")
		})
	}
}

func TestService_Generate_DocumentPathIsValid(t *testing.T) {
	// A document alone satisfies the grounding invariant
	stub := &stubProvider{responses: []string{"1. Launch update\n"}}
	svc := NewService(stub, Options{})

	items, err := svc.Generate(context.Background(), &GenerateRequest{
		ContentType:     ContentTypeAnnouncement,
		DocumentContent: "TideCoin ships audited vaults this quarter.",
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, stub.calls, "small documents must not trigger a summarization call")
	assert.Contains(t, stub.prompts[0], "<DOCUMENT_CONTENT>")
}

func TestService_Generate_OversizedDocumentSummarizedFirst(t *testing.T) {
	oversized := makeDocument(SummarizationThresholdChars + 1)
	stub := &stubProvider{responses: []string{
		"TideCoin summary.",
		"1. Post one\n2. Post two\n",
	}}
	svc := NewService(stub, Options{})

	items, err := svc.Generate(context.Background(), &GenerateRequest{
		ContentType:     ContentTypeTweet,
		TokenName:       "TideCoin",
		Niche:           "DeFi",
		DocumentContent: oversized,
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, stub.calls, "summarization then generation")
	assert.Contains(t, stub.prompts[0], "<DOCUMENT_TO_SUMMARIZE>")
	assert.Contains(t, stub.prompts[1], "TideCoin summary.")
	assert.NotContains(t, stub.prompts[1], oversized)
}

func TestService_Generate_ProviderFailurePropagates(t *testing.T) {
	providerErr := errors.New("gemini request failed: quota exceeded")
	stub := &stubProvider{errs: []error{providerErr}}
	svc := NewService(stub, Options{})

	items, err := svc.Generate(context.Background(), &GenerateRequest{
		ContentType: ContentTypeTweet,
		TokenName:   "Foo",
		Niche:       "DeFi",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, providerErr)
	assert.Nil(t, items)
}

func TestService_Generate_DegenerateResponseIsNotAnError(t *testing.T) {
	stub := &stubProvider{responses: []string{"\n\n \n"}}
	svc := NewService(stub, Options{})

	items, err := svc.Generate(context.Background(), &GenerateRequest{
		ContentType: ContentTypeNarrative,
		TokenName:   "Foo",
		Niche:       "DeFi",
	})

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))

	got := truncate(strings.Repeat("é", 10), 4)
	assert.Equal(t, "éééé...", got)
	assert.True(t, utf8.ValidString(got))
}
