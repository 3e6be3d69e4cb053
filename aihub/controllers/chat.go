// aihub/controllers/chat.go
package controllers

import (
	"context"
	"strings"

	"aihub/aihub/session"
	"aihub/aihub/types"
	uttypes "aihub/aihub/utils/types"
)

type ChatController struct {
	manager *session.Manager
}

func NewChatController(manager *session.Manager) *ChatController {
	return &ChatController{manager: manager}
}

func (c *ChatController) CreateSession(agentID string) types.ChatSession {
	return c.manager.CreateSession(agentID)
}

// Chat sends one turn and blocks until the reply has fully streamed, then
// returns the complete text. The session's message log is updated chunk by
// chunk along the way regardless of this blocking surface.
func (c *ChatController) Chat(ctx context.Context, req uttypes.ChatRequest) (map[string]string, error) {
	var full strings.Builder
	err := c.manager.SendMessage(ctx, req.SessionID, req.Content, func(chunk string) {
		full.WriteString(chunk)
	})
	if err != nil {
		return nil, err
	}
	return map[string]string{"response": full.String(), "session_id": req.SessionID}, nil
}

// ChatStream sends one turn and exposes the reply as a channel of chunks.
// Precondition failures (unknown session, empty text, turn already in
// flight) arrive on the error channel; transport failures never do — the
// chain folds those into the chunk stream itself.
func (c *ChatController) ChatStream(ctx context.Context, req uttypes.ChatRequest) (chan string, chan error) {
	ch := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(ch)
		defer close(errCh)

		err := c.manager.SendMessage(ctx, req.SessionID, req.Content, func(chunk string) {
			select {
			case ch <- chunk:
			case <-ctx.Done():
			}
		})
		if err != nil {
			errCh <- err
		}
	}()

	return ch, errCh
}

func (c *ChatController) ListSessions() []uttypes.ChatSessionSummary {
	sessions := c.manager.Sessions()
	out := make([]uttypes.ChatSessionSummary, len(sessions))
	for i, s := range sessions {
		out[i] = uttypes.ChatSessionSummary{
			SessionID:    s.ID,
			AgentID:      s.AgentID,
			Title:        s.Title,
			MessageCount: len(s.Messages),
			CreatedAt:    s.CreatedAt,
		}
	}
	return out
}

func (c *ChatController) GetMessagesForSession(sessionID string) ([]types.Message, error) {
	return c.manager.Messages(sessionID)
}

func (c *ChatController) SelectSession(sessionID string) error {
	return c.manager.Select(sessionID)
}
