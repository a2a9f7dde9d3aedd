package content

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_NumberedList(t *testing.T) {
	raw := "1. Alpha\n2) Beta\n3- Gamma\n\n"

	items := ParseResponse(raw, ContentTypeTweet)

	require.Len(t, items, 3)
	assert.Equal(t, "Alpha", items[0].Content)
	assert.Equal(t, "Beta", items[1].Content)
	assert.Equal(t, "Gamma", items[2].Content)
	for i, item := range items {
		assert.Equal(t, ContentTypeTweet, item.Type)
		assert.Equal(t, strconv.Itoa(i+1), item.ID)
		assert.Empty(t, item.ImageURL)
	}
}

func TestParseResponse_MarkerVariants(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "dot separator", line: "1. First tweet", expected: "First tweet"},
		{name: "paren separator", line: "12) Later item", expected: "Later item"},
		{name: "dash separator", line: "3- Dashed", expected: "Dashed"},
		{name: "no separator", line: "4 Bare number", expected: "Bare number"},
		{name: "extra whitespace", line: "  5 .   Spaced out  ", expected: "Spaced out"},
		{name: "marker only at start", line: "1. Ship 2. Moon", expected: "Ship 2. Moon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ParseResponse(tt.line, ContentTypeHashtag)
			require.Len(t, items, 1)
			assert.Equal(t, tt.expected, items[0].Content)
		})
	}
}

func TestParseResponse_DropsEmptyLinesAndRenumbers(t *testing.T) {
	// "4." cleans to nothing and must not leave a gap in the IDs
	raw := "1. Alpha\n\n4.\n5. Beta\n   \n"

	items := ParseResponse(raw, ContentTypeAnnouncement)

	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Alpha", items[0].Content)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "Beta", items[1].Content)
}

func TestParseResponse_NoSurvivingLines(t *testing.T) {
	// Degenerate output yields an empty sequence, not an error
	items := ParseResponse("\n \n2.\n", ContentTypeNarrative)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseResponse_MemeItemsCarryImageURLs(t *testing.T) {
	first := ParseResponse("1. Wen moon\n2. Much wow\n", ContentTypeMeme)
	second := ParseResponse("1. Wen moon\n2. Much wow\n", ContentTypeMeme)

	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ImageURL)
	assert.NotEmpty(t, first[1].ImageURL)
	assert.NotEqual(t, first[0].ImageURL, first[1].ImageURL)

	// Derivation is positional and stable across calls
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ImageURL, second[0].ImageURL)
	assert.Equal(t, first[1].ImageURL, second[1].ImageURL)
}

func TestCleanLine_IdempotentOnCleanLines(t *testing.T) {
	lines := []string{
		"Alpha launches today",
		"#DeFi",
		"Join us on Discord!",
		"Beta - now with staking",
	}

	for _, line := range lines {
		assert.Equal(t, line, CleanLine(line), "cleaning an already-clean line must be a no-op")
	}
}
