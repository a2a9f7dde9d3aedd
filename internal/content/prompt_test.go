package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := &GenerateRequest{
		ContentType:    ContentTypeTweet,
		TokenName:      "TideCoin",
		Niche:          "DeFi",
		ContentIdea:    "mainnet launch",
		TargetAudience: "yield farmers",
		Tone:           "Playful",
		CTA:            "Join the waitlist",
	}

	first := BuildPrompt(req, "", false)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPrompt(req, "", false))
	}
}

func TestBuildPrompt_TemplatePerContentType(t *testing.T) {
	tests := []struct {
		contentType ContentType
		persona     string
		directive   string
	}{
		{ContentTypeTweet, "Social Media Manager", "Create 5 engaging tweets"},
		{ContentTypeAnnouncement, "Community Manager", "Create 3 concise and professional community announcements"},
		{ContentTypeNarrative, "storyteller", "Write 3 distinct crypto narratives"},
		{ContentTypeHashtag, "social media optimization expert", "Generate 10 highly relevant and discoverable hashtags"},
	}

	for _, tt := range tests {
		t.Run(string(tt.contentType), func(t *testing.T) {
			req := &GenerateRequest{ContentType: tt.contentType, TokenName: "TideCoin", Niche: "DeFi"}
			prompt := BuildPrompt(req, "", false)

			assert.Contains(t, prompt, tt.persona)
			assert.Contains(t, prompt, tt.directive)
			assert.Contains(t, prompt, "About TideCoin in the DeFi space.")
			assert.True(t, strings.HasSuffix(prompt, formatInstruction),
				"every prompt must end with the format instruction")
		})
	}
}

func TestBuildPrompt_UnrecognizedTypeFallsBackToGeneric(t *testing.T) {
	req := &GenerateRequest{ContentType: "podcast", TokenName: "TideCoin", Niche: "DeFi"}
	prompt := BuildPrompt(req, "", false)

	assert.Contains(t, prompt, "Generate content about the project described.")
	assert.Contains(t, prompt, "About TideCoin in the DeFi space.")
	assert.Contains(t, prompt, formatInstruction)
}

func TestBuildPrompt_OptionalClauses(t *testing.T) {
	base := &GenerateRequest{ContentType: ContentTypeTweet, TokenName: "TideCoin", Niche: "DeFi"}
	plain := BuildPrompt(base, "", false)
	assert.NotContains(t, plain, "tone")
	assert.NotContains(t, plain, "Call to Action")

	styled := *base
	styled.Tone = "PLAYFUL"
	assert.Contains(t, BuildPrompt(&styled, "", false), "Use a playful tone.",
		"tone must be case-normalized")

	withCTA := *base
	withCTA.CTA = "Join the waitlist"
	assert.Contains(t, BuildPrompt(&withCTA, "", false), `End with a clear Call to Action: "Join the waitlist".`)

	withIdea := *base
	withIdea.ContentIdea = "mainnet launch"
	assert.Contains(t, BuildPrompt(&withIdea, "", false), `Specifically for a tweet about: "mainnet launch".`)

	withAudience := *base
	withAudience.TargetAudience = "yield farmers"
	assert.Contains(t, BuildPrompt(&withAudience, "", false), "About TideCoin in the DeFi space, targeting yield farmers.")
}

func TestBuildPrompt_DocumentContext(t *testing.T) {
	req := &GenerateRequest{
		ContentType: ContentTypeAnnouncement,
		TokenName:   "TideCoin",
		Niche:       "DeFi",
	}
	doc := "TideCoin is a non-custodial liquidity protocol."

	prompt := BuildPrompt(req, doc, false)

	require.Contains(t, prompt, "<DOCUMENT_CONTENT>\n"+doc+"\n</DOCUMENT_CONTENT>")
	assert.Contains(t, prompt, "Based *strictly* on the following project documentation")
	// Default behavior keeps the manual fields as secondary framing
	assert.Contains(t, prompt, "For TideCoin in the DeFi space.")
	assert.NotContains(t, prompt, "About TideCoin")
}

func TestBuildPrompt_DocumentOverridesManualFields(t *testing.T) {
	req := &GenerateRequest{
		ContentType: ContentTypeAnnouncement,
		TokenName:   "TideCoin",
		Niche:       "DeFi",
	}
	doc := "TideCoin is a non-custodial liquidity protocol."

	prompt := BuildPrompt(req, doc, true)

	assert.Contains(t, prompt, "<DOCUMENT_CONTENT>")
	assert.NotContains(t, prompt, "For TideCoin in the DeFi space")
}

func TestBuildPrompt_SubjectNameAlias(t *testing.T) {
	req := &GenerateRequest{ContentType: ContentTypeHashtag, SubjectName: "TideCoin", Niche: "DeFi"}
	assert.Contains(t, BuildPrompt(req, "", false), "About TideCoin in the DeFi space.")
}
