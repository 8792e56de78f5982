package relfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlWorkspace mirrors the on-disk YAML layout.
type yamlWorkspace struct {
	Relations map[string]yamlDef `yaml:"relations"`
}

type yamlDef struct {
	Rows int     `yaml:"rows"`
	Cols int     `yaml:"cols"`
	Bits [][]int `yaml:"bits,omitempty"`
}

// loadYAML parses a workspace from YAML source.
func loadYAML(path string, data []byte) (*Workspace, error) {
	var ws yamlWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%s: parse workspace: %w", path, err)
	}
	if ws.Relations == nil {
		return nil, fmt.Errorf("%s: relations block is required", path)
	}

	defs := make([]Def, 0, len(ws.Relations))
	for name, d := range ws.Relations {
		defs = append(defs, Def{Name: name, Rows: d.Rows, Cols: d.Cols, Bits: d.Bits})
	}

	return finish(defs), nil
}
