package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practica/exercises/internal/httpclient"
	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

func openAIClientFor(t *testing.T, serverURL string) llm.Client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test")
	t.Setenv("OPENAI_MODEL", "gpt-3.5-turbo")
	t.Setenv("OPENAI_BASE_URL", serverURL+"/v1")

	cfg := loadConfig(t)
	client, err := llm.New(cfg, llm.OpenAI)
	require.NoError(t, err)
	return client
}

func TestChat_OpenAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.False(t, req.Stream)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	text, err := client.Chat(context.Background(), []chat.Message{chat.User("hello")})
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestChat_Azure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/deployments/my-deploy/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-02-15-preview", r.URL.Query().Get("api-version"))
		assert.Equal(t, "azure-key", r.Header.Get("api-key"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"from azure"}}]}`))
	}))
	defer server.Close()

	t.Setenv("AZURE_OPENAI_API_KEY", "azure-key")
	t.Setenv("AZURE_OPENAI_ENDPOINT", server.URL)
	t.Setenv("AZURE_OPENAI_DEPLOYMENT_NAME", "my-deploy")

	cfg := loadConfig(t)
	client, err := llm.New(cfg, llm.Azure)
	require.NoError(t, err)

	text, err := client.Chat(context.Background(), []chat.Message{chat.User("hello")})
	require.NoError(t, err)
	assert.Equal(t, "from azure", text)
}

func TestChat_OpenRouter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-or", r.Header.Get("Authorization"))
		assert.Equal(t, "https://example.com", r.Header.Get("HTTP-Referer"))

		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google/gemma-2-9b-it:free", req.Model)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"routed"}}]}`))
	}))
	defer server.Close()

	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	t.Setenv("OPENROUTER_BASE_URL", server.URL+"/api/v1")
	t.Setenv("OPENROUTER_REFERER", "https://example.com")

	cfg := loadConfig(t)
	client, err := llm.New(cfg, llm.OpenRouter)
	require.NoError(t, err)

	text, err := client.Chat(context.Background(), []chat.Message{chat.User("hello")})
	require.NoError(t, err)
	assert.Equal(t, "routed", text)
}

func TestChat_UpstreamFailureIsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream down"}}`))
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	_, err := client.Chat(context.Background(), []chat.Message{chat.User("hello")})
	require.Error(t, err)

	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, llm.OpenAI, provErr.Provider)

	var upstream *httpclient.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
}

func TestChat_RefusesEmptyMessageSequence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the provider")
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	_, err := client.Chat(context.Background(), nil)
	assert.Error(t, err)
}

func TestChat_OptionsOverrideModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{}"}}]}`))
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	_, err := client.Chat(context.Background(), []chat.Message{chat.User("hello")},
		chat.WithModel("gpt-4o-mini"), chat.WithJSONObject())
	require.NoError(t, err)
}

func TestStream_DeliversChunks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n"))
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n"))
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	var got string
	err := client.Stream(context.Background(), []chat.Message{chat.User("hello")}, func(chunk string) error {
		got += chunk
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestStream_FallsBackToSingleCompletion(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Stream {
			// Streaming not supported by this stand-in provider.
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"stream unsupported"}}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"whole reply"}}]}`))
	}))
	defer server.Close()

	client := openAIClientFor(t, server.URL)

	var chunks []string
	err := client.Stream(context.Background(), []chat.Message{chat.User("hello")}, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"whole reply"}, chunks)
	assert.Equal(t, 2, calls)
}
