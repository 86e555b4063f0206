package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsBlockedKeyword(t *testing.T) {
	assert.True(t, containsBlockedKeyword("I want to end my life"))
	assert.True(t, containsBlockedKeyword("thoughts of SUICIDE lately"))
	assert.True(t, containsBlockedKeyword("I've been struggling with self harm"))
	assert.False(t, containsBlockedKeyword("I had a rough day at work"))
	assert.False(t, containsBlockedKeyword(""))
}

func TestChatWithAIBlockedMessage(t *testing.T) {
	// the proxy must never forward a blocked message upstream
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("blocked message reached the model endpoint")
	}))
	defer upstream.Close()

	original := geminiEndpoint
	geminiEndpoint = upstream.URL
	defer func() { geminiEndpoint = original }()

	c, w := newJSONContext(t, "POST", "/api/ai/chat", map[string]any{
		"message": "Sometimes I think about suicide",
	})
	ChatWithAI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, safetyResponse, body["reply"])
}

func TestChatWithAI(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"That sounds stressful. Try a short breathing exercise."}]}}]}`))
	}))
	defer upstream.Close()

	original := geminiEndpoint
	geminiEndpoint = upstream.URL
	defer func() { geminiEndpoint = original }()

	c, w := newJSONContext(t, "POST", "/api/ai/chat", map[string]any{
		"message": "I had a stressful day",
	})
	ChatWithAI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "That sounds stressful. Try a short breathing exercise.", body["reply"])
}

func TestChatWithAIUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	original := geminiEndpoint
	geminiEndpoint = upstream.URL
	defer func() { geminiEndpoint = original }()

	c, w := newJSONContext(t, "POST", "/api/ai/chat", map[string]any{
		"message": "Hello",
	})
	ChatWithAI(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChatWithAIMissingMessage(t *testing.T) {
	c, w := newJSONContext(t, "POST", "/api/ai/chat", map[string]any{})
	ChatWithAI(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
