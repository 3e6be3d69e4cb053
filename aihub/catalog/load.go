// aihub/catalog/load.go
package catalog

import (
	"fmt"
	"os"

	"aihub/aihub/types"

	"gopkg.in/yaml.v3"
)

type agentsFile struct {
	Agents []types.Agent `yaml:"agents"`
}

// NewFromFile builds a catalog whose system set is extended with agents
// declared in a YAML file. File agents are locale-invariant and must carry
// an id, a name and a system instruction.
func NewFromFile(locale, path string) (*Catalog, error) {
	c := New(locale)
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading agents file: %w", err)
	}

	var f agentsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing agents file: %w", err)
	}

	for _, a := range f.Agents {
		if a.ID == "" || a.Name == "" || a.SystemInstruction == "" {
			return nil, fmt.Errorf("agents file: entry %q missing id, name or system_instruction", a.Name)
		}
		if _, err := c.FindAgent(a.ID); err == nil {
			return nil, fmt.Errorf("agents file: duplicate agent id %q", a.ID)
		}
		if a.Icon == "" {
			a.Icon = "Zap"
		}
		if a.ThemeColor == "" {
			a.ThemeColor = "bg-indigo-500"
		}
		c.extra = append(c.extra, a)
	}
	return c, nil
}
