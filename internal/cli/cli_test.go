package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspace = "testdata/basic.yaml"

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// TestShow_Text tests the plain grid rendering.
func TestShow_Text(t *testing.T) {
	out, err := execute(t, "show", workspace, "A")
	require.NoError(t, err)
	assert.Equal(t, ".X..\n....\n...X\n....\n", out)
}

// TestShow_JSON tests the JSON envelope.
func TestShow_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "show", workspace, "A")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", data["name"])
	assert.Equal(t, float64(4), data["rows"])
	assert.Equal(t, ".X..\n....\n...X\n....", data["grid"])
}

// TestShow_UnknownRelation tests the command-error exit path.
func TestShow_UnknownRelation(t *testing.T) {
	_, err := execute(t, "show", workspace, "Z")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `relation "Z" not in workspace`)
}

// TestShow_MissingWorkspace tests load failure mapping.
func TestShow_MissingWorkspace(t *testing.T) {
	_, err := execute(t, "show", "testdata/absent.yaml", "A")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestEval_Compose tests a binary operation end to end.
func TestEval_Compose(t *testing.T) {
	out, err := execute(t, "eval", workspace, "compose", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "...X\n....\n...X\n....\n", out)
}

// TestEval_Transpose tests a unary operation end to end.
func TestEval_Transpose(t *testing.T) {
	out, err := execute(t, "eval", workspace, "transpose", "A")
	require.NoError(t, err)
	assert.Equal(t, "....\nX...\n....\n..X.\n", out)
}

// TestEval_UnknownOp tests the op gate.
func TestEval_UnknownOp(t *testing.T) {
	_, err := execute(t, "eval", workspace, "converse", "A")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown op "converse"`)
}

// TestEval_Arity tests the argument count gate.
func TestEval_Arity(t *testing.T) {
	_, err := execute(t, "eval", workspace, "meet", "A")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "takes 2 relation name(s)")
}

// TestCheck_True tests a passing comparison.
func TestCheck_True(t *testing.T) {
	out, err := execute(t, "check", workspace, "equals", "A", "A")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

// TestCheck_FalseExitsWithFailure tests the shell-composable exit code.
func TestCheck_FalseExitsWithFailure(t *testing.T) {
	out, err := execute(t, "check", workspace, "subset", "A", "B")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "false")
}

// TestCheck_IsEmptyArity tests the unary check arity gate.
func TestCheck_IsEmptyArity(t *testing.T) {
	_, err := execute(t, "check", workspace, "is_empty", "A", "B")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "takes 1 relation name(s)")
}

// TestCheck_JSON tests the JSON payload of a comparison.
func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "check", workspace, "not_equals", "A", "B")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "not_equals", data["check"])
	assert.Equal(t, true, data["result"])
}

// TestRandom_SeededIsReproducible tests the --seed flag.
func TestRandom_SeededIsReproducible(t *testing.T) {
	first, err := execute(t, "random", "6", "6", "0.5", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "random", "6", "6", "0.5", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 6*7) // six rows of six glyphs plus newlines
}

// TestRandom_InvalidProbability tests argument validation.
func TestRandom_InvalidProbability(t *testing.T) {
	_, err := execute(t, "random", "4", "4", "1.5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "random", "x", "4", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid row count "x"`)
}

// TestRoot_InvalidFormat tests the persistent flag validation.
func TestRoot_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "show", workspace, "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

// TestGetExitCode tests the exit code extraction defaults.
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "check failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}
