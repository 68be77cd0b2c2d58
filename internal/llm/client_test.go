package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChatSendsBearerAndModel(t *testing.T) {
	var gotAuth string
	var gotReq ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		resp := ChatResponse{Choices: []Choice{{Message: Message{Content: "hello"}, FinishReason: "stop"}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	text, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.1)

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 100, gotReq.MaxTokens)
}

func TestChatUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatEmbeddedAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Error: &APIError{Message: "model overloaded", Type: "server_error"}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(ChatResponse{}))
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 100, 0.1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestChatLengthLimitedResponseIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Choices: []Choice{{Message: Message{Content: "partial outp"}, FinishReason: "length"}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	text, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 10, 0.1)

	require.NoError(t, err)
	assert.Equal(t, "partial outp", text)
}

func TestChatEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := ChatResponse{Choices: []Choice{{Message: Message{Content: ""}, FinishReason: "stop"}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient("secret", "test-model", srv.URL, 5*time.Second, zap.NewNop())
	text, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 10, 0.1)

	require.NoError(t, err)
	assert.Empty(t, text)
}
