package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentide/tokentide-api/internal/config"
	"github.com/tokentide/tokentide-api/internal/llm"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Name() string { return "fake" }

type fakeProviderSource struct {
	provider llm.Provider
	err      error
}

func (f *fakeProviderSource) GetProvider(_ context.Context, _ string) (llm.Provider, error) {
	return f.provider, f.err
}

func newGenerateRouter(cfg *config.Config, source providerSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewGenerateHandler(cfg, source, nil, nil)
	router.POST("/api/generate", handler.Generate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerate_MissingCredential(t *testing.T) {
	provider := &fakeProvider{response: "1. never used"}
	router := newGenerateRouter(&config.Config{}, &fakeProviderSource{provider: provider})

	w := postJSON(t, router, "/api/generate", map[string]interface{}{
		"contentType": "tweet",
		"tokenName":   "TideCoin",
		"niche":       "DeFi",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gemini API key is not configured", resp["error"])
	assert.Zero(t, provider.calls, "no model call without a configured key")
}

func TestGenerate_MissingFields(t *testing.T) {
	provider := &fakeProvider{response: "1. never used"}
	cfg := &config.Config{GeminiAPIKey: "test-key"}
	router := newGenerateRouter(cfg, &fakeProviderSource{provider: provider})

	w := postJSON(t, router, "/api/generate", map[string]interface{}{
		"contentType": "tweet",
		"tokenName":   "TideCoin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp.Error)
	assert.Equal(t, []string{"niche"}, resp.Missing)
	assert.Zero(t, provider.calls)
}

func TestGenerate_HappyPath(t *testing.T) {
	provider := &fakeProvider{response: "1. #tidecoin\n2. #defi\n"}
	cfg := &config.Config{GeminiAPIKey: "test-key"}
	router := newGenerateRouter(cfg, &fakeProviderSource{provider: provider})

	w := postJSON(t, router, "/api/generate", map[string]interface{}{
		"contentType": "hashtag",
		"tokenName":   "TideCoin",
		"niche":       "DeFi",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ID      string `json:"id"`
			Type    string `json:"type"`
			Content string `json:"content"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "1", resp.Items[0].ID)
	assert.Equal(t, "hashtag", resp.Items[0].Type)
	assert.Equal(t, "#tidecoin", resp.Items[0].Content)
	assert.Equal(t, "#defi", resp.Items[1].Content)
}

func TestGenerate_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	cfg := &config.Config{GeminiAPIKey: "test-key"}
	router := newGenerateRouter(cfg, &fakeProviderSource{provider: provider})

	w := postJSON(t, router, "/api/generate", map[string]interface{}{
		"contentType": "tweet",
		"tokenName":   "TideCoin",
		"niche":       "DeFi",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "quota exceeded", resp["error"], "the provider's message is surfaced")
}

func TestGenerate_UnknownProvider(t *testing.T) {
	cfg := &config.Config{GeminiAPIKey: "test-key"}
	source := &fakeProviderSource{err: errors.New("unknown provider: claude (allowed: gemini, openai)")}
	router := newGenerateRouter(cfg, source)

	w := postJSON(t, router, "/api/generate", map[string]interface{}{
		"contentType": "tweet",
		"tokenName":   "TideCoin",
		"niche":       "DeFi",
		"provider":    "claude",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
