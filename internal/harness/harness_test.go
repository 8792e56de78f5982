package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	s, err := LoadScenario(filepath.Join("testdata", name+".yaml"))
	require.NoError(t, err)
	return s
}

// TestScenarios runs every checked-in scenario against its golden file.
func TestScenarios(t *testing.T) {
	for _, name := range []string{
		"double_complement",
		"composition",
		"lattice_bounds",
	} {
		t.Run(name, func(t *testing.T) {
			s := loadScenario(t, name)
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

// TestLoadScenario_MissingName tests the name requirement.
func TestLoadScenario_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("relations:\n  A:\n    rows: 1\n    cols: 1\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

// TestRun_UnknownOp tests the step dispatch gate.
func TestRun_UnknownOp(t *testing.T) {
	s := &Scenario{
		Name:      "bad_op",
		Relations: map[string]RelationDef{"A": {Rows: 2, Cols: 2}},
		Steps:     []Step{{Bind: "out", Op: "converse", Args: []string{"A"}}},
	}
	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown op "converse"`)
}

// TestRun_DuplicateBind tests that a step cannot shadow an input.
func TestRun_DuplicateBind(t *testing.T) {
	s := &Scenario{
		Name:      "rebind",
		Relations: map[string]RelationDef{"A": {Rows: 2, Cols: 2}},
		Steps:     []Step{{Bind: "A", Op: "copy", Args: []string{"A"}}},
	}
	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `already bound`)
}

// TestRun_UnknownRelation tests operand resolution in steps and checks.
func TestRun_UnknownRelation(t *testing.T) {
	s := &Scenario{
		Name:      "dangling_step",
		Relations: map[string]RelationDef{"A": {Rows: 2, Cols: 2}},
		Steps:     []Step{{Bind: "out", Op: "meet", Args: []string{"A", "B"}}},
	}
	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown relation "B"`)

	s = &Scenario{
		Name:       "dangling_check",
		Relations:  map[string]RelationDef{"A": {Rows: 2, Cols: 2}},
		Assertions: []Assertion{{Check: "equals", Left: "A", Right: "B", Want: true}},
	}
	_, err = Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown relation "B"`)
}

// TestRun_FailedAssertion tests that a wrong expectation fails the run.
func TestRun_FailedAssertion(t *testing.T) {
	s := &Scenario{
		Name: "wrong",
		Relations: map[string]RelationDef{
			"A": {Rows: 2, Cols: 2, Bits: [][]int{{0, 0}}},
		},
		Assertions: []Assertion{{Check: "is_empty", Left: "A", Want: true}},
	}
	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want true")
}

// TestRun_GridsCoverAllBindings tests the result contents directly.
func TestRun_GridsCoverAllBindings(t *testing.T) {
	s := loadScenario(t, "double_complement")
	result, err := Run(s)
	require.NoError(t, err)

	require.Len(t, result.Grids, 3)
	assert.Equal(t, ".X.\n..X\n...", result.Grids["A"])
	assert.Equal(t, result.Grids["A"], result.Grids["back"])
	assert.Equal(t, "X.X\nXX.\nXXX", result.Grids["comp"])
}
