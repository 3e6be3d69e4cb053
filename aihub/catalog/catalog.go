// aihub/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"aihub/aihub/types"

	"github.com/google/uuid"
)

var ErrAgentNotFound = errors.New("agent not found")

// Catalog holds the agent personas a chat session can be bound to. System
// agents are regenerated wholesale when the locale changes; custom agents
// live in their own list and are concatenated on read, never merged in.
type Catalog struct {
	mu     sync.RWMutex
	locale string
	system []types.Agent
	extra  []types.Agent // locale-invariant agents loaded from AGENTS_FILE
	custom []types.Agent
}

func New(locale string) *Catalog {
	return &Catalog{
		locale: locale,
		system: systemAgents(locale),
	}
}

// ListAgents returns the system agents for the locale followed by every
// custom agent, in creation order. Passing a new locale regenerates the
// system list; custom agents are preserved.
func (c *Catalog) ListAgents(locale string) []types.Agent {
	c.mu.Lock()
	defer c.mu.Unlock()

	if locale != "" && locale != c.locale {
		c.locale = locale
		c.system = systemAgents(locale)
	}

	out := make([]types.Agent, 0, len(c.system)+len(c.extra)+len(c.custom))
	out = append(out, c.system...)
	out = append(out, c.extra...)
	out = append(out, c.custom...)
	return out
}

func (c *Catalog) CreateAgent(name, description, instruction string) (types.Agent, error) {
	if strings.TrimSpace(name) == "" {
		return types.Agent{}, errors.New("agent name is required")
	}
	if strings.TrimSpace(instruction) == "" {
		return types.Agent{}, errors.New("agent instruction is required")
	}
	if description == "" {
		description = "Custom created agent."
	}

	agent := types.Agent{
		ID:                "custom_" + uuid.New().String(),
		Name:              name,
		Description:       description,
		Icon:              "Zap",
		SystemInstruction: instruction,
		ThemeColor:        "bg-indigo-500",
		WelcomeMessage: fmt.Sprintf(
			"I am your custom agent %s. I am configured to help you with: %s. How can I assist you?",
			name, description),
		ExamplePrompts: []string{
			"What are your main capabilities?",
			"Can you help me with a specific task?",
			"Summarize the latest context",
			"Give me an example of what you can do",
		},
	}

	c.mu.Lock()
	c.custom = append(c.custom, agent)
	c.mu.Unlock()
	return agent, nil
}

func (c *Catalog) FindAgent(id string) (types.Agent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, list := range [][]types.Agent{c.system, c.extra, c.custom} {
		for _, a := range list {
			if a.ID == id {
				return a, nil
			}
		}
	}
	return types.Agent{}, ErrAgentNotFound
}

// First returns the default agent callers fall back to when a lookup fails.
func (c *Catalog) First() types.Agent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.system) > 0 {
		return c.system[0]
	}
	if len(c.extra) > 0 {
		return c.extra[0]
	}
	if len(c.custom) > 0 {
		return c.custom[0]
	}
	return types.Agent{}
}
