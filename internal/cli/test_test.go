package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/catalog"
)

const harnessScenarios = "../harness/testdata/scenarios"

func newTestCmd(format string, out *bytes.Buffer, args ...string) error {
	cmd := NewTestCommand(&RootOptions{Format: format, Color: "never", Registry: catalog.Default()})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestTestCommandMissingArgs(t *testing.T) {
	err := newTestCmd("text", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	err := newTestCmd("text", &bytes.Buffer{}, "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyDir(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newTestCmd("text", buf, t.TempDir()))
	assert.Equal(t, "No scenarios found.\n", buf.String())
}

func TestTestCommandPublishedScenarios(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newTestCmd("text", buf, harnessScenarios))

	out := buf.String()
	assert.Contains(t, out, "✓ 2024-06-guard-gallivant\n")
	assert.Contains(t, out, "Test Summary: 12 passed, 0 failed, 12 total\n")
	assert.Contains(t, out, "✓ All scenarios passed\n")
}

func TestTestCommandFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, newTestCmd("json", buf, harnessScenarios, "--filter", "2015-*"))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Total)
	assert.Equal(t, "2015-01-not-quite-lisp", resp.Data.Scenarios[0].Name)
}

func TestTestCommandInvalidFilter(t *testing.T) {
	err := newTestCmd("text", &bytes.Buffer{}, harnessScenarios, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const lispScenario = `name: lisp
description: "floor counting"
year: 2015
day: 1
input: "())"
expect:
  - part: 1
    answer: "%s"
`

func TestTestCommandWrongAnswer(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "scenarios", "lisp.yaml"), fmt.Sprintf(lispScenario, "7"))

	buf := &bytes.Buffer{}
	err := newTestCmd("text", buf, filepath.Join(root, "scenarios"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "✗ lisp\n  part 1: expected \"7\", got \"-1\"\n")
	assert.Contains(t, buf.String(), "Test Summary: 0 passed, 1 failed, 1 total\n")
}

func TestTestCommandLoadError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "scenarios", "broken.yaml"), "name: broken\nbogus: true\n")

	buf := &bytes.Buffer{}
	err := newTestCmd("json", buf, filepath.Join(root, "scenarios"))
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
}

func TestTestCommandUpdateThenCompare(t *testing.T) {
	root := t.TempDir()
	scenarios := filepath.Join(root, "scenarios")
	writeFile(t, filepath.Join(scenarios, "lisp.yaml"), fmt.Sprintf(lispScenario, "-1"))

	buf := &bytes.Buffer{}
	require.NoError(t, newTestCmd("text", buf, scenarios, "--update"))
	assert.Contains(t, buf.String(), "✓ lisp (golden updated)\n")

	golden, err := os.ReadFile(filepath.Join(root, "golden", "lisp.golden"))
	require.NoError(t, err)
	assert.Equal(t,
		`{"day":1,"parts":[{"answer":"-1","part":1},{"answer":"3","part":2}],"scenario":"lisp","year":2015}`,
		string(golden))

	// A tampered golden file fails even though the pinned answer matches.
	writeFile(t, filepath.Join(root, "golden", "lisp.golden"), `{"day":1}`)
	buf.Reset()
	err = newTestCmd("text", buf, scenarios)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "snapshot does not match golden file")
}
