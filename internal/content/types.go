package content

import "strings"

// ContentType selects which prompt template and persona are used
type ContentType string

const (
	ContentTypeTweet        ContentType = "tweet"
	ContentTypeAnnouncement ContentType = "announcement"
	ContentTypeNarrative    ContentType = "narrative"
	ContentTypeHashtag      ContentType = "hashtag"

	// ContentTypeMeme has no dedicated prompt template (it takes the generic
	// branch) but parsed items carry a placeholder image URL
	ContentTypeMeme ContentType = "meme"
)

// GenerateRequest is the input to the generation pipeline
type GenerateRequest struct {
	ContentType ContentType `json:"contentType"`
	TokenName   string      `json:"tokenName"`
	// SubjectName is an accepted alias for TokenName
	SubjectName     string `json:"subjectName"`
	Niche           string `json:"niche"`
	ContentIdea     string `json:"contentIdea"`
	TargetAudience  string `json:"targetAudience"`
	Tone            string `json:"tone"`
	CTA             string `json:"cta"`
	DocumentContent string `json:"documentContent"`
}

// Subject resolves the tokenName/subjectName alias
func (r *GenerateRequest) Subject() string {
	if r.TokenName != "" {
		return r.TokenName
	}
	return r.SubjectName
}

// missingFields returns the required fields absent from the request.
// Either tokenName+niche or a document must ground the prompt.
func (r *GenerateRequest) missingFields() []string {
	var missing []string
	if r.ContentType == "" {
		missing = append(missing, "contentType")
	}
	if r.DocumentContent == "" {
		if r.Subject() == "" {
			missing = append(missing, "tokenName")
		}
		if r.Niche == "" {
			missing = append(missing, "niche")
		}
	}
	return missing
}

// GeneratedItem is one unit of generated output
type GeneratedItem struct {
	ID       string      `json:"id"`
	Type     ContentType `json:"type"`
	Content  string      `json:"content"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

// ValidationError reports which required request fields are missing
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
