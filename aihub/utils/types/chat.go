// aihub/utils/types/chat.go
package types

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

type CreateSessionRequest struct {
	AgentID string `json:"agent_id"`
}

type CreateAgentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// For the threads panel in the sidebar.
type ChatSessionSummary struct {
	SessionID    string `json:"session_id"`
	AgentID      string `json:"agent_id"`
	Title        string `json:"title"`
	MessageCount int    `json:"message_count"`
	CreatedAt    int64  `json:"created_at"`
}
