// Package chat holds the wire-level types shared by every provider adapter.
// The shapes mirror the OpenAI chat completions API, which all three
// supported providers speak (Azure with a deployment-scoped URL, OpenRouter
// verbatim).
package chat

import (
	"fmt"
)

// Roles accepted in a message sequence.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged text unit.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content" binding:"required"`
}

// System, User and Assistant are shorthand constructors used by the
// exercise packages when building prompt templates.
func System(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func User(content string) Message      { return Message{Role: RoleUser, Content: content} }
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// Validate rejects message sequences that no provider would accept. It runs
// before any network call so that malformed input never burns a request.
func Validate(msgs []Message) error {
	if len(msgs) == 0 {
		return fmt.Errorf("chat: message sequence must not be empty")
	}
	for i, m := range msgs {
		switch m.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return fmt.Errorf("chat: message %d has unknown role %q", i, m.Role)
		}
	}
	return nil
}

// Request is the outbound chat completion payload.
type Request struct {
	Model          string          `json:"model,omitempty"`
	Messages       []Message       `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
}

// ResponseFormat forces a specific output format, e.g. {"type": "json_object"}.
type ResponseFormat struct {
	Type string `json:"type"`
}

// Response is the inbound completion payload. Only the fields the exercises
// consume are decoded; everything else in the provider reply is ignored.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	Delta        *Delta  `json:"delta,omitempty"`
	FinishReason string  `json:"finish_reason"`
}

// Delta carries the incremental content of a streamed chunk.
type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstContent returns the first choice's content, or "" when the provider
// returned no choices. Callers must treat the result as untrusted text.
func (r *Response) FirstContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Option mutates an outbound request. Options are applied after the adapter
// fills in its defaults, so WithModel overrides the configured model.
type Option func(*Request)

// WithModel overrides the client's default model for a single call.
func WithModel(model string) Option {
	return func(r *Request) { r.Model = model }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(r *Request) { r.Temperature = &t }
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(r *Request) { r.MaxTokens = n }
}

// WithJSONObject asks the provider to emit a JSON object. The reply is still
// untrusted; callers keep their parse fallbacks.
func WithJSONObject() Option {
	return func(r *Request) { r.ResponseFormat = &ResponseFormat{Type: "json_object"} }
}
