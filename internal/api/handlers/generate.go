package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tokentide/tokentide-api/internal/config"
	"github.com/tokentide/tokentide-api/internal/content"
	"github.com/tokentide/tokentide-api/internal/llm"
	"github.com/tokentide/tokentide-api/internal/logger"
	"github.com/tokentide/tokentide-api/internal/metrics"
	"github.com/tokentide/tokentide-api/internal/middleware"
	"github.com/tokentide/tokentide-api/internal/models"
	"github.com/tokentide/tokentide-api/internal/services"
)

var generationMetrics = metrics.NewSentryMetrics()

// providerSource resolves a named provider, defaulting when the name is empty
type providerSource interface {
	GetProvider(ctx context.Context, name string) (llm.Provider, error)
}

type GenerateHandler struct {
	cfg       *config.Config
	providers providerSource
	activity  *services.ActivityService
	cloudW    *metrics.Client
}

func NewGenerateHandler(cfg *config.Config, providers providerSource, activity *services.ActivityService, cloudW *metrics.Client) *GenerateHandler {
	return &GenerateHandler{
		cfg:       cfg,
		providers: providers,
		activity:  activity,
		cloudW:    cloudW,
	}
}

type generateRequestBody struct {
	content.GenerateRequest
	Provider string `json:"provider"`
}

// Generate runs one content-generation request end to end. The credential
// check happens per invocation so a key added to the environment takes effect
// without redeploying.
func (h *GenerateHandler) Generate(c *gin.Context) {
	if h.cfg.GeminiAPIKey == "" {
		logger.Error("Generation requested without a configured Gemini API key", nil, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key is not configured"})
		return
	}

	var body generateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	provider, err := h.providers.GetProvider(c.Request.Context(), body.Provider)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, llm.ErrNotConfigured) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	svc := content.NewService(provider, content.Options{
		DocumentOverridesManualFields: h.cfg.DocumentOverridesManualFields,
	})

	start := time.Now()
	items, err := svc.Generate(c.Request.Context(), &body.GenerateRequest)
	duration := time.Since(start)

	contentType := string(body.ContentType)
	generationMetrics.RecordGenerationDuration(c.Request.Context(), duration, contentType, err == nil)
	if h.cloudW != nil {
		h.cloudW.RecordGenerationDuration(duration, contentType, err == nil)
	}

	if err != nil {
		var validationErr *content.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Missing required fields",
				"missing": validationErr.Missing,
			})
			return
		}

		logger.Error("Content generation failed", err, logger.Fields{
			"content_type": contentType,
			"request_id":   c.GetString("request_id"),
		})

		message := err.Error()
		if message == "" {
			message = "Failed to generate content. Please try again."
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		return
	}

	h.recordActivity(c, &body.GenerateRequest, len(items), duration)

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GenerateHandler) recordActivity(c *gin.Context, req *content.GenerateRequest, itemCount int, duration time.Duration) {
	if h.activity == nil {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return
	}

	entry := &models.ActivityLog{
		UserID:      userID,
		ContentType: string(req.ContentType),
		TokenName:   req.Subject(),
		ItemCount:   itemCount,
		DurationMS:  int(duration.Milliseconds()),
		RequestID:   c.GetString("request_id"),
	}
	if err := h.activity.Record(c.Request.Context(), entry); err != nil {
		logger.Warn("Failed to record generation activity", logger.Fields{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
