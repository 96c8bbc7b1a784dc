package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testLayout = `version: "1.0"
name: checklist
root:
  kind: selector
  border: rounded
  gap: 0
  children_style:
    - select: first
      style:
        bold: true
    - select: not_last
      style:
        underline: true
  children:
    - kind: text
      text: fetch
    - kind: text
      text: build
    - kind: badge
      text: ship
      variant: success
`

func writeLayout(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
