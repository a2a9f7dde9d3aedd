package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokentide/tokentide-api/internal/logger"
	"github.com/tokentide/tokentide-api/internal/metrics"
	"github.com/tokentide/tokentide-api/internal/services"
)

// subscriptionService is what the handler needs from the subscription layer
type subscriptionService interface {
	Subscribe(ctx context.Context, email, source string) error
}

type SubscribeHandler struct {
	subscriptions subscriptionService
	cloudW        *metrics.Client
}

func NewSubscribeHandler(subscriptions subscriptionService, cloudW *metrics.Client) *SubscribeHandler {
	return &SubscribeHandler{
		subscriptions: subscriptions,
		cloudW:        cloudW,
	}
}

type subscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// Subscribe adds an email to the mailing list
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required"})
		return
	}

	source := req.Source
	if source == "" {
		source = "landing"
	}

	if err := h.subscriptions.Subscribe(c.Request.Context(), req.Email, source); err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
			return
		}

		logger.Error("Subscription failed", err, logger.Fields{
			"request_id": c.GetString("request_id"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe. Please try again."})
		return
	}

	if h.cloudW != nil {
		h.cloudW.RecordSubscription(source)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed! Check your inbox for a welcome email."})
}
