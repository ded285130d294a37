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

	"github.com/grantpilot/sectiond/internal/domain"
)

func TestCompleteSuccess(t *testing.T) {
	var gotReq ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "test-model",
			Choices: []Choice{
				{Message: &ChatMessage{Role: "assistant", Content: "  Generated Text \n"}, FinishReason: "stop"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 350, time.Second)
	got, err := client.Complete(context.Background(), "system instructions", "user content")
	require.NoError(t, err)

	assert.Equal(t, "Generated Text", got)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 350, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system instructions", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "user content", gotReq.Messages[1].Content)
}

func TestCompleteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(ErrorResponse{Error: &APIError{Message: "rate limited", Type: "rate_limit"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 350, time.Second)
	_, err := client.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{ID: "chatcmpl-2"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 350, time.Second)
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestCompleteMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 350, time.Second)
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestCompleteUnreachableProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model", 350, time.Second)
	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestFactoryMockMode(t *testing.T) {
	t.Setenv(EnvMode, ModeMock)
	client := NewCompletionClient("http://unused", "", "", 350, time.Second)
	_, ok := client.(*MockClient)
	assert.True(t, ok)

	got, err := client.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
