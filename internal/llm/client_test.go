package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsSystemAndUserMessages(t *testing.T) {
	var got ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"[关键词:研讨,评分]"}}]}`))
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(Config{BaseURL: server.URL + "/", APIKey: "sk-test"}, server.Client())

	reply, err := client.Complete(context.Background(), "instruction", "我们小组要给研讨打分")
	require.NoError(t, err)
	assert.Equal(t, "[关键词:研讨,评分]", reply)

	assert.Equal(t, DefaultModel, got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, ChatMessage{Role: "system", Content: "instruction"}, got.Messages[0])
	assert.Equal(t, ChatMessage{Role: "user", Content: "我们小组要给研讨打分"}, got.Messages[1])
}

func TestCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(Config{BaseURL: server.URL, APIKey: "sk-test"}, server.Client())

	_, err := client.Complete(context.Background(), "s", "u")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(Config{BaseURL: server.URL, APIKey: "sk-test"}, server.Client())

	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
