// aihub/services/llm/llm.go
package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("transport not configured")
	ErrMissingAPIKey = errors.New("missing API key")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamRequest carries one turn to a transport. History holds the prior
// turns only; the message being sent travels in NewMessage. Folding it into
// History produces two consecutive user turns, which strict-alternation
// providers reject.
type StreamRequest struct {
	Model             string
	SystemInstruction string
	AgentID           string
	History           []Message
	NewMessage        string
}

// Transport produces a model reply as ordered text fragments. Stream blocks
// until the reply is exhausted, calling onChunk once per fragment in arrival
// order; the concatenation of all fragments is the full reply.
type Transport interface {
	Name() string
	Stream(ctx context.Context, req StreamRequest, onChunk func(string)) error
}

// validateHistory rejects turn lists a strict-alternation provider would
// bounce: anything not starting with a user turn or repeating a role.
func validateHistory(history []Message) error {
	for i, m := range history {
		want := "user"
		if i%2 == 1 {
			want = "model"
		}
		if m.Role != want {
			return fmt.Errorf("malformed history: turn %d has role %q, want %q (did the new message leak into history?)", i, m.Role, want)
		}
	}
	if len(history)%2 != 0 {
		return fmt.Errorf("malformed history: %d turns, expected complete user/model pairs", len(history))
	}
	return nil
}
