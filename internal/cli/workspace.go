package cli

import (
	"fmt"

	"github.com/roach88/bitrel/internal/relfile"
	"github.com/roach88/bitrel/rel"
)

// loadWorkspace reads a workspace file, mapping failures to command errors.
func loadWorkspace(path string) (*relfile.Workspace, error) {
	ws, err := relfile.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load workspace", err)
	}
	return ws, nil
}

// buildNamed builds the named workspace relations in ctx.
func buildNamed(ctx *rel.Context, ws *relfile.Workspace, names ...string) (map[string]*rel.Relation, error) {
	built := make(map[string]*rel.Relation, len(names))
	for _, name := range names {
		if _, ok := built[name]; ok {
			continue
		}
		def, ok := ws.Lookup(name)
		if !ok {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("relation %q not in workspace (have %v)", name, ws.Names()))
		}
		r, err := def.Build(ctx)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "build relation", err)
		}
		built[name] = r
	}
	return built, nil
}

// gridData is the JSON payload for a rendered relation.
type gridData struct {
	Name string `json:"name,omitempty"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Grid string `json:"grid"`
}

func newGridData(name string, r *rel.Relation) gridData {
	return gridData{Name: name, Rows: r.Rows(), Cols: r.Cols(), Grid: r.String()}
}
