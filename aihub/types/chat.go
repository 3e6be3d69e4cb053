// aihub/types/chat.go
package types

type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system" // reserved, not emitted by current flows
)

type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // ms since epoch
}

type ChatSession struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt int64     `json:"created_at"`
}

// Agent is a persona definition: behavioral instruction plus display metadata.
type Agent struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Description       string   `json:"description" yaml:"description"`
	Icon              string   `json:"icon" yaml:"icon"`
	SystemInstruction string   `json:"system_instruction" yaml:"system_instruction"`
	ThemeColor        string   `json:"theme_color" yaml:"theme_color"`
	WelcomeMessage    string   `json:"welcome_message,omitempty" yaml:"welcome_message,omitempty"`
	ExamplePrompts    []string `json:"example_prompts,omitempty" yaml:"example_prompts,omitempty"`
}
