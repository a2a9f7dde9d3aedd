package content

import (
	"fmt"
	"strings"
)

// formatInstruction is the fixed trailing sentence forcing a numbered-list-only
// response. ParseResponse assumes exactly this shape; keep the two in sync.
const formatInstruction = "Your response should ONLY contain the generated content, " +
	"formatted as a numbered list. Do not include any conversational text, introductions, or conclusions."

// BuildPrompt composes the full instruction string for a generation request.
// documentText is the resolved document context (already summarized when the
// upload was oversized); empty when no document was supplied. The output is
// deterministic: identical inputs always yield an identical prompt.
func BuildPrompt(req *GenerateRequest, documentText string, documentOverridesManualFields bool) string {
	contextBasis := buildContextBasis(req, documentText, documentOverridesManualFields)

	style := ""
	if req.Tone != "" {
		style = fmt.Sprintf(" Use a %s tone.", strings.ToLower(req.Tone))
	}

	callToAction := ""
	if req.CTA != "" {
		callToAction = fmt.Sprintf(" End with a clear Call to Action: %q.", req.CTA)
	}

	switch req.ContentType {
	case ContentTypeTweet:
		idea := ""
		if req.ContentIdea != "" {
			idea = fmt.Sprintf(" Specifically for a tweet about: %q.", req.ContentIdea)
		}
		return fmt.Sprintf("You are a highly skilled Social Media Manager. %s%s%s%s"+
			" Create 5 engaging tweets. Each tweet must be a standalone item in the numbered list,"+
			" under 280 characters, and include 2-3 highly relevant hashtags."+
			" Make them sound really good, and based on the content idea provided. %s",
			contextBasis, idea, style, callToAction, formatInstruction)

	case ContentTypeAnnouncement:
		idea := ""
		if req.ContentIdea != "" {
			idea = fmt.Sprintf(" Specifically focus the announcement on: %q.", req.ContentIdea)
		}
		return fmt.Sprintf("You are a professional Community Manager. %s%s%s%s"+
			" Create 3 concise and professional community announcements for platforms like Discord or Telegram."+
			" Each announcement should be a distinct item in the numbered list."+
			" Use clear formatting (e.g., bullet points, bolding, line breaks) and include relevant emojis"+
			" where appropriate to enhance readability. %s",
			contextBasis, idea, style, callToAction, formatInstruction)

	case ContentTypeNarrative:
		idea := ""
		if req.ContentIdea != "" {
			idea = fmt.Sprintf(" Focus the narrative on: %q.", req.ContentIdea)
		}
		return fmt.Sprintf("You are a compelling storyteller in the crypto space. %s%s%s%s"+
			" Write 3 distinct crypto narratives. Each narrative should be a short, story-driven post"+
			" (approximately 100-150 words) in the numbered list that aligns with current market trends"+
			" and highlights the project's unique value proposition and potential impact."+
			" Ensure each narrative is unique and engaging. %s",
			contextBasis, idea, style, callToAction, formatInstruction)

	case ContentTypeHashtag:
		return fmt.Sprintf("You are a social media optimization expert. %s%s"+
			" Generate 10 highly relevant and discoverable hashtags."+
			" Provide them as a numbered list, with one hashtag per line. Do not include any other text. %s",
			contextBasis, style, formatInstruction)

	default:
		// Unrecognized types fall through to a generic branch instead of failing
		return fmt.Sprintf("Generate content about the project described. %s%s%s. %s",
			contextBasis, style, callToAction, formatInstruction)
	}
}

// buildContextBasis resolves the clause grounding the model's output, either
// in the supplied document (wrapped in explicit delimiters) or in the manual
// tokenName/niche fields.
func buildContextBasis(req *GenerateRequest, documentText string, documentOverridesManualFields bool) string {
	audience := ""
	if req.TargetAudience != "" {
		audience = fmt.Sprintf(", targeting %s", req.TargetAudience)
	}

	if documentText != "" {
		basis := "Based *strictly* on the following project documentation provided in <DOCUMENT_CONTENT> tags," +
			" generate content. Prioritize information from this document.\n" +
			"<DOCUMENT_CONTENT>\n" + documentText + "\n</DOCUMENT_CONTENT>\n"
		if documentOverridesManualFields || req.Subject() == "" {
			return basis
		}
		return basis + fmt.Sprintf("For %s in the %s space%s.", req.Subject(), req.Niche, audience)
	}

	return fmt.Sprintf("About %s in the %s space%s.", req.Subject(), req.Niche, audience)
}
