// aihub/controllers/agents.go
package controllers

import (
	"aihub/aihub/catalog"
	"aihub/aihub/types"
	uttypes "aihub/aihub/utils/types"
)

type AgentsController struct {
	catalog *catalog.Catalog
}

func NewAgentsController(cat *catalog.Catalog) *AgentsController {
	return &AgentsController{catalog: cat}
}

func (c *AgentsController) ListAgents(locale string) []types.Agent {
	return c.catalog.ListAgents(locale)
}

func (c *AgentsController) CreateAgent(req uttypes.CreateAgentRequest) (types.Agent, error) {
	return c.catalog.CreateAgent(req.Name, req.Description, req.Instruction)
}
