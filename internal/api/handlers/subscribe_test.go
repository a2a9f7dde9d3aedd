package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentide/tokentide-api/internal/services"
)

type fakeSubscriptionService struct {
	err    error
	emails []string
}

func (f *fakeSubscriptionService) Subscribe(_ context.Context, email, _ string) error {
	f.emails = append(f.emails, email)
	return f.err
}

func newSubscribeRouter(svc subscriptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewSubscribeHandler(svc, nil)
	router.POST("/api/subscribe", handler.Subscribe)
	return router
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	svc := &fakeSubscriptionService{}
	router := newSubscribeRouter(svc)

	w := postJSON(t, router, "/api/subscribe", map[string]interface{}{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.emails, "invalid addresses never reach the service")
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	svc := &fakeSubscriptionService{err: services.ErrAlreadySubscribed}
	router := newSubscribeRouter(svc)

	w := postJSON(t, router, "/api/subscribe", map[string]interface{}{
		"email": "dev@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubscribe_Success(t *testing.T) {
	svc := &fakeSubscriptionService{}
	router := newSubscribeRouter(svc)

	w := postJSON(t, router, "/api/subscribe", map[string]interface{}{
		"email":  "dev@example.com",
		"source": "pricing",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"dev@example.com"}, svc.emails)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Subscribed")
}

func TestSubscribe_ServiceFailure(t *testing.T) {
	svc := &fakeSubscriptionService{err: errors.New("brevo request failed")}
	router := newSubscribeRouter(svc)

	w := postJSON(t, router, "/api/subscribe", map[string]interface{}{
		"email": "dev@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
