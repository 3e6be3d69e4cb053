// aihub/session/manager.go
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"aihub/aihub/catalog"
	"aihub/aihub/services/llm"
	"aihub/aihub/types"
	"aihub/aihub/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrStreamInFlight  = errors.New("a reply is already streaming for this session")
)

const titleLimit = 30

// Streamer is the fallback chain seen from the manager's side: it never
// fails, it just streams chunks and completes exactly once.
type Streamer interface {
	Stream(ctx context.Context, req llm.StreamRequest, onChunk func(string), onComplete func())
}

// Manager owns the session collection, the active session id and every
// message mutation. Transports never touch session state; they only hand
// chunks back here, and chunks are routed by the captured session id, not by
// whichever session happens to be active when they arrive.
type Manager struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	streamer Streamer
	model    string
	locale   string

	sessions []*types.ChatSession // most-recent-first
	inflight map[string]bool
	activeID string
}

func NewManager(cat *catalog.Catalog, streamer Streamer, model, locale string) *Manager {
	return &Manager{
		catalog:  cat,
		streamer: streamer,
		model:    model,
		locale:   locale,
		inflight: make(map[string]bool),
	}
}

func placeholderTitle(locale string) string {
	if locale == "vi" {
		return "Cuộc trò chuyện mới"
	}
	return "New Chat"
}

// CreateSession opens a new empty session bound to the agent, inserts it at
// the front of the collection and marks it active. An unknown or empty agent
// id falls back to the catalog's first entry.
func (m *Manager) CreateSession(agentID string) types.ChatSession {
	agent, err := m.catalog.FindAgent(agentID)
	if err != nil {
		agent = m.catalog.First()
	}

	s := &types.ChatSession{
		ID:        uuid.New().String(),
		AgentID:   agent.ID,
		Title:     placeholderTitle(m.locale),
		Messages:  []types.Message{},
		CreatedAt: time.Now().UnixMilli(),
	}

	m.mu.Lock()
	m.sessions = append([]*types.ChatSession{s}, m.sessions...)
	m.activeID = s.ID
	m.mu.Unlock()

	logging.AppLogger.Info("session created",
		zap.String("session_id", s.ID),
		zap.String("agent_id", s.AgentID),
	)
	return *s
}

// Select reassigns the active session id. It performs no I/O; an in-flight
// stream for the previously active session keeps updating that session.
func (m *Manager) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(id) == nil {
		return ErrSessionNotFound
	}
	m.activeID = id
	return nil
}

func (m *Manager) Active() (types.ChatSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.find(m.activeID)
	if s == nil {
		return types.ChatSession{}, false
	}
	return copySession(s), true
}

// Sessions returns a snapshot of the collection, most-recent-first.
func (m *Manager) Sessions() []types.ChatSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.ChatSession, len(m.sessions))
	for i, s := range m.sessions {
		out[i] = copySession(s)
	}
	return out
}

func (m *Manager) Get(id string) (types.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.find(id)
	if s == nil {
		return types.ChatSession{}, ErrSessionNotFound
	}
	return copySession(s), nil
}

func (m *Manager) Messages(id string) ([]types.Message, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Messages, nil
}

// Loading reports whether a reply is currently streaming into the session.
func (m *Manager) Loading(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight[id]
}

// SendMessage appends the user turn, derives the title on the session's
// first message, appends an empty model placeholder and streams the reply
// into it. Each chunk rewrites the placeholder with the full accumulated
// buffer so readers always observe a consistent prefix of the reply.
//
// The call blocks until the stream completes. onChunk is optional and
// observes raw fragments in arrival order. A second SendMessage for the same
// session while one is streaming is rejected with ErrStreamInFlight.
func (m *Manager) SendMessage(ctx context.Context, sessionID, text string, onChunk func(string)) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	m.mu.Lock()
	s := m.find(sessionID)
	if s == nil {
		m.mu.Unlock()
		return ErrSessionNotFound
	}
	if m.inflight[sessionID] {
		m.mu.Unlock()
		return ErrStreamInFlight
	}

	// History for the transport is the log as it existed before this turn:
	// it must exclude both the new user message and the placeholder.
	history := make([]llm.Message, len(s.Messages))
	for i, msg := range s.Messages {
		history[i] = llm.Message{Role: string(msg.Role), Content: msg.Content}
	}

	firstMessage := len(s.Messages) == 0

	s.Messages = append(s.Messages, types.Message{
		ID:        uuid.New().String(),
		Role:      types.RoleUser,
		Content:   text,
		Timestamp: time.Now().UnixMilli(),
	})
	if firstMessage {
		s.Title = deriveTitle(text)
	}

	placeholderID := uuid.New().String()
	s.Messages = append(s.Messages, types.Message{
		ID:        placeholderID,
		Role:      types.RoleModel,
		Content:   "",
		Timestamp: time.Now().UnixMilli(),
	})

	agentID := s.AgentID
	m.inflight[sessionID] = true
	m.mu.Unlock()

	instruction := ""
	if agent, err := m.catalog.FindAgent(agentID); err == nil {
		instruction = agent.SystemInstruction
	}

	var buffer strings.Builder
	m.streamer.Stream(ctx,
		llm.StreamRequest{
			Model:             m.model,
			SystemInstruction: instruction,
			AgentID:           agentID,
			History:           history,
			NewMessage:        text,
		},
		func(chunk string) {
			buffer.WriteString(chunk)
			m.writeModelMessage(sessionID, placeholderID, buffer.String())
			if onChunk != nil {
				onChunk(chunk)
			}
		},
		func() {
			m.mu.Lock()
			delete(m.inflight, sessionID)
			m.mu.Unlock()
		},
	)
	return nil
}

// writeModelMessage overwrites the placeholder's content with the full
// accumulated reply so far, addressed by session and message id.
func (m *Manager) writeModelMessage(sessionID, messageID, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.find(sessionID)
	if s == nil {
		return
	}
	for i := range s.Messages {
		if s.Messages[i].ID == messageID {
			s.Messages[i].Content = content
			return
		}
	}
}

// deriveTitle keeps the first 30 characters of the first user message,
// counted in runes so multi-byte text is not cut mid-character.
func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit])
	}
	return text
}

// find must be called with m.mu held.
func (m *Manager) find(id string) *types.ChatSession {
	for _, s := range m.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func copySession(s *types.ChatSession) types.ChatSession {
	out := *s
	out.Messages = append([]types.Message{}, s.Messages...)
	return out
}
