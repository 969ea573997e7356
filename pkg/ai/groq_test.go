package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

func TestGroqComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-model", payload.Model)
		require.Len(t, payload.Messages, 1)
		assert.Equal(t, "hello", payload.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ok\":true}"}}]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.AIConfig{GroqAPIKey: "test-key", GroqBaseURL: ts.URL + "/", GroqModel: "test-model"})

	out, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestGroqComplete_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.AIConfig{GroqAPIKey: "k", GroqBaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGroqComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.AIConfig{GroqAPIKey: "k", GroqBaseURL: ts.URL})

	_, err := client.Complete(context.Background(), "hello")
	assert.Error(t, err)
}

func TestNewClient_NoKeyIsNil(t *testing.T) {
	client, err := NewClient(context.Background(), &config.AIConfig{Provider: config.AIProviderGroq})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewClient_Groq(t *testing.T) {
	client, err := NewClient(context.Background(), &config.AIConfig{Provider: config.AIProviderGroq, GroqAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &GroqClient{}, client)
}
