// Package llm exposes one capability behind one call signature: send a
// message sequence to a hosted chat-completion provider and get text back.
// Exactly three providers exist. Selection happens once, at construction;
// nothing re-dispatches on the provider name per call.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/httpclient"
	"github.com/practica/exercises/pkg/chat"
)

// ProviderName identifies one of the supported chat providers.
type ProviderName string

const (
	OpenAI     ProviderName = "openai"
	Azure      ProviderName = "azure"
	OpenRouter ProviderName = "openrouter"
)

// ValidProviders returns the closed set of supported provider names.
func ValidProviders() []ProviderName {
	return []ProviderName{OpenAI, Azure, OpenRouter}
}

// StreamFunc receives incremental chunks of the assistant reply.
type StreamFunc func(chunk string) error

// Client is a provider-agnostic chat client. Chat returns the first
// completion's text; it performs no retries and no caching. Stream delivers
// the reply incrementally and degrades to a single Chat call when streaming
// is unavailable.
type Client interface {
	Provider() ProviderName
	Chat(ctx context.Context, msgs []chat.Message, opts ...chat.Option) (string, error)
	Stream(ctx context.Context, msgs []chat.Message, fn StreamFunc, opts ...chat.Option) error
}

const requestTimeout = 60 * time.Second

// restClient is the transport shared by all three adapters. They differ only
// in endpoint URL, auth headers and default model, all fixed at construction.
type restClient struct {
	provider ProviderName
	model    string
	url      string
	headers  map[string]string
	http     httpclient.Doer
	log      *zap.Logger
}

func (c *restClient) Provider() ProviderName {
	return c.provider
}

func (c *restClient) buildRequest(msgs []chat.Message, opts []chat.Option) (*chat.Request, error) {
	if err := chat.Validate(msgs); err != nil {
		return nil, err
	}
	req := &chat.Request{Model: c.model, Messages: msgs}
	for _, opt := range opts {
		opt(req)
	}
	return req, nil
}

func (c *restClient) Chat(ctx context.Context, msgs []chat.Message, opts ...chat.Option) (string, error) {
	req, err := c.buildRequest(msgs, opts)
	if err != nil {
		return "", err
	}
	req.Stream = false

	var resp chat.Response
	if err := httpclient.PostJSON(ctx, c.http, c.url, c.headers, req, &resp); err != nil {
		return "", &ProviderError{Provider: c.provider, Err: err}
	}

	c.log.Debug("chat completion",
		zap.String("provider", string(c.provider)),
		zap.String("model", req.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return resp.FirstContent(), nil
}

// callbackError marks an error raised by the caller's StreamFunc, so the
// fallback below does not swallow or re-deliver it.
type callbackError struct{ err error }

func (e *callbackError) Error() string { return e.err.Error() }
func (e *callbackError) Unwrap() error { return e.err }

func (c *restClient) Stream(ctx context.Context, msgs []chat.Message, fn StreamFunc, opts ...chat.Option) error {
	req, err := c.buildRequest(msgs, opts)
	if err != nil {
		return err
	}
	req.Stream = true

	err = httpclient.PostStream(ctx, c.http, c.url, c.headers, req, func(line string) error {
		if !strings.HasPrefix(line, "data: ") {
			return nil
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			return nil
		}

		var resp chat.Response
		if err := json.Unmarshal([]byte(data), &resp); err != nil {
			c.log.Warn("skipping malformed stream chunk",
				zap.String("provider", string(c.provider)), zap.Error(err))
			return nil
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Delta == nil {
			return nil
		}
		if content := resp.Choices[0].Delta.Content; content != "" {
			if err := fn(content); err != nil {
				return &callbackError{err: err}
			}
		}
		return nil
	})
	if err == nil {
		return nil
	}

	var cbErr *callbackError
	if errors.As(err, &cbErr) {
		return cbErr.err
	}

	// Streaming is best effort: fall back to a single completion and hand
	// the whole reply over as one chunk.
	c.log.Warn("stream failed, falling back to single completion",
		zap.String("provider", string(c.provider)), zap.Error(err))
	text, chatErr := c.Chat(ctx, msgs, opts...)
	if chatErr != nil {
		return chatErr
	}
	return fn(text)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
