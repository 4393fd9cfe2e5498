package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doorYAML = `
initial: closed
states:
  closed:
    transitions:
      open: opened
      lock: locked
  opened:
    transitions:
      close: closed
  locked:
    transitions:
      unlock: closed
      smash: rubble
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "door.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doorYAML), 0o644))

	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", path}, args...))

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestValidate(t *testing.T) {
	out, _, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: locked --smash--> rubble")
	assert.Contains(t, out, `ok: 3 states, 5 events, initial "closed"`)

	_, _, err = execute(t, "validate", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 transition(s)")
}

func TestStates(t *testing.T) {
	out, _, err := execute(t, "states")
	require.NoError(t, err)
	assert.Equal(t, "closed\nopened\nlocked\n", out)

	out, _, err = execute(t, "states", "--event", "close")
	require.NoError(t, err)
	assert.Equal(t, "opened\n", out)
}

func TestGraph(t *testing.T) {
	out, _, err := execute(t, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph FSM")

	out, _, err = execute(t, "graph", "-f", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, `closed -->|"lock"| locked`)

	_, _, err = execute(t, "graph", "-f", "svg")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	out, _, err := execute(t, "run", "open", ":undo", ":redo", "close", ":redo")
	require.NoError(t, err)
	assert.Contains(t, out, "open         closed -> opened\n")
	assert.Contains(t, out, ":undo        opened -> closed\n")
	assert.Contains(t, out, ":redo        closed -> opened\n")
	assert.Contains(t, out, ":redo        closed -> closed (nothing to do)\n")
	assert.Contains(t, out, "current: closed\n")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--json", "lock", ":goto=opened")
	require.NoError(t, err)
	assert.Contains(t, out, `{"current":"opened","previous":"locked","undo":[]}`)
}

func TestRunFailures(t *testing.T) {
	_, _, err := execute(t, "run", "lock", "smash")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `step "smash"`)
	assert.Contains(t, err.Error(), "rubble")

	_, _, err = execute(t, "run", ":fly")
	require.Error(t, err)

	_, _, err = execute(t, "run", ":goto=nowhere")
	require.Error(t, err)
}

func TestRunVerbose(t *testing.T) {
	_, logs, err := execute(t, "run", "-v", "open")
	require.NoError(t, err)
	assert.Contains(t, logs, "state changed")
}

func TestMissingConfig(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "states"})

	require.Error(t, root.Execute())
}
