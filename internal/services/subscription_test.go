package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBrevoContact_Success(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody brevoContactRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewSubscriptionService(nil, nil, "test-key", 7).WithBaseURL(server.URL)

	err := svc.createBrevoContact(context.Background(), "dev@example.com")

	require.NoError(t, err)
	assert.Equal(t, "/contacts", gotPath)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "dev@example.com", gotBody.Email)
	assert.Equal(t, []int{7}, gotBody.ListIDs)
}

func TestCreateBrevoContact_Duplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(brevoErrorResponse{
			Code:    "duplicate_parameter",
			Message: "Contact already exist",
		})
	}))
	defer server.Close()

	svc := NewSubscriptionService(nil, nil, "test-key", 7).WithBaseURL(server.URL)

	err := svc.createBrevoContact(context.Background(), "dev@example.com")

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestCreateBrevoContact_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewSubscriptionService(nil, nil, "test-key", 7).WithBaseURL(server.URL)

	err := svc.createBrevoContact(context.Background(), "dev@example.com")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadySubscribed)
}

func TestCreateBrevoContact_NoAPIKeyIsLocalOnly(t *testing.T) {
	svc := NewSubscriptionService(nil, nil, "", 7)

	err := svc.createBrevoContact(context.Background(), "dev@example.com")

	assert.NoError(t, err, "without an API key the signup is recorded locally only")
}
