package content

import (
	"context"
	"unicode/utf8"

	"github.com/tokentide/tokentide-api/internal/llm"
	"github.com/tokentide/tokentide-api/internal/logger"
	"github.com/tokentide/tokentide-api/internal/observability"
)

const maxLogPreviewChars = 500

// Options configures pipeline behavior
type Options struct {
	// DocumentOverridesManualFields controls whether an uploaded document
	// fully replaces tokenName/niche as prompt context (true) or keeps them
	// as secondary framing (false)
	DocumentOverridesManualFields bool
}

// Service runs the generation pipeline: validate, resolve document context,
// build the prompt, call the provider, parse the response. It holds no
// mutable state; concurrent Generate calls are independent.
type Service struct {
	provider     llm.Provider
	preprocessor *Preprocessor
	opts         Options
}

// NewService creates a pipeline service around an injected provider
func NewService(provider llm.Provider, opts Options) *Service {
	return &Service{
		provider:     provider,
		preprocessor: NewPreprocessor(provider),
		opts:         opts,
	}
}

// Generate runs one request through the pipeline. It returns a
// *ValidationError for missing fields, the provider's error when the
// generation call fails, and otherwise the parsed items (possibly empty:
// an unparseable-but-successful response is not an error).
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) ([]GeneratedItem, error) {
	if missing := req.missingFields(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	logger.Debug("Generation request received", logger.Fields{
		"content_type":   string(req.ContentType),
		"token_name":     req.Subject(),
		"niche":          req.Niche,
		"document_chars": len(req.DocumentContent),
	})

	// The main generation call must not start until the document context is
	// resolved (summarized or fallen back), since it feeds the prompt
	documentText := req.DocumentContent
	if documentText != "" {
		documentText = s.preprocessor.PrepareDocument(ctx, documentText)
	}

	prompt := BuildPrompt(req, documentText, s.opts.DocumentOverridesManualFields)
	logger.Debug("Prompt built", logger.Fields{
		"content_type":  string(req.ContentType),
		"prompt_prefix": truncate(prompt, maxLogPreviewChars),
	})

	trace := observability.GetClient().StartTrace(ctx, "content.generate", map[string]interface{}{
		"content_type": string(req.ContentType),
	})
	defer trace.Finish()

	gen := trace.Generation("generate_text", s.provider.Name(), nil)
	gen.Input(prompt)

	raw, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		return nil, err
	}

	gen.Output(raw)
	gen.Finish()

	logger.Debug("Provider response received", logger.Fields{
		"response_prefix": truncate(raw, maxLogPreviewChars),
		"response_chars":  len(raw),
	})

	items := ParseResponse(raw, req.ContentType)
	logger.Info("Generation completed", logger.Fields{
		"content_type": string(req.ContentType),
		"item_count":   len(items),
	})

	return items, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
