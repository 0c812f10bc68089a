// Package llmtest provides a canned-reply Client for exercising prompt
// templates without a network.
package llmtest

import (
	"context"

	"github.com/practica/exercises/internal/llm"
	"github.com/practica/exercises/pkg/chat"
)

// Stub implements llm.Client. Chat returns the queued replies in order
// (repeating the last one when exhausted) and records every prompt.
type Stub struct {
	Replies []string
	Err     error
	Calls   [][]chat.Message
}

var _ llm.Client = (*Stub)(nil)

func (s *Stub) Provider() llm.ProviderName { return llm.OpenAI }

func (s *Stub) Chat(ctx context.Context, msgs []chat.Message, opts ...chat.Option) (string, error) {
	s.Calls = append(s.Calls, msgs)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Replies) == 0 {
		return "", nil
	}
	reply := s.Replies[0]
	if len(s.Replies) > 1 {
		s.Replies = s.Replies[1:]
	}
	return reply, nil
}

func (s *Stub) Stream(ctx context.Context, msgs []chat.Message, fn llm.StreamFunc, opts ...chat.Option) error {
	text, err := s.Chat(ctx, msgs, opts...)
	if err != nil {
		return err
	}
	return fn(text)
}

// LastCall returns the most recent prompt, or nil.
func (s *Stub) LastCall() []chat.Message {
	if len(s.Calls) == 0 {
		return nil
	}
	return s.Calls[len(s.Calls)-1]
}
