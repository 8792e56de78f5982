// Package relfile loads declarative relation workspaces: named
// relations with fixed dimensions and an optional list of set bits,
// written as CUE or YAML files.
//
// A workspace file looks like:
//
//	relations: {
//		A: {rows: 4, cols: 4, bits: [[0, 1], [2, 3]]}
//		B: {rows: 4, cols: 4}
//	}
//
// (or the YAML equivalent). Relation names are NFC-normalized on load
// and lookup, so visually identical names resolve identically.
package relfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/bitrel/rel"
)

// Def is one named relation definition.
type Def struct {
	Name string
	Rows int
	Cols int
	Bits [][]int
}

// Workspace is a loaded set of relation definitions, ordered by name.
type Workspace struct {
	Defs []Def
}

// Load reads a workspace file, dispatching on the file extension.
// Supported extensions: .cue, .yaml, .yml.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".cue":
		return loadCUE(path, data)
	case ".yaml", ".yml":
		return loadYAML(path, data)
	default:
		return nil, fmt.Errorf("unsupported workspace extension %q (want .cue, .yaml or .yml)", ext)
	}
}

// Lookup finds a definition by NFC-normalized name.
func (w *Workspace) Lookup(name string) (Def, bool) {
	name = norm.NFC.String(name)
	for _, d := range w.Defs {
		if d.Name == name {
			return d, true
		}
	}
	return Def{}, false
}

// Names returns the definition names in sorted order.
func (w *Workspace) Names() []string {
	names := make([]string, len(w.Defs))
	for i, d := range w.Defs {
		names[i] = d.Name
	}
	return names
}

// Build mints the defined relation in ctx. Dimension and bit validation
// happen in the rel layer, so a bad definition fails with the same
// typed errors a direct caller would see.
func (d Def) Build(ctx *rel.Context) (*rel.Relation, error) {
	r, err := ctx.New(d.Rows, d.Cols, d.Bits...)
	if err != nil {
		return nil, fmt.Errorf("build relation %q: %w", d.Name, err)
	}
	return r, nil
}

// finish normalizes names and sorts definitions for deterministic output.
func finish(defs []Def) *Workspace {
	for i := range defs {
		defs[i].Name = norm.NFC.String(defs[i].Name)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return &Workspace{Defs: defs}
}
