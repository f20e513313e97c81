package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var (
	modelsDir    = filepath.Join("..", "..", "testdata", "models")
	scenariosDir = filepath.Join("..", "..", "testdata", "scenarios")
	replyFile    = filepath.Join("..", "parser", "testdata", "isabelle.out")
)

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeCUE writes a single models.cue into a fresh directory.
func writeCUE(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.cue"), []byte("package models\n\n"+body), 0644))
	return dir
}

// decodeData unmarshals the data field of a JSON CLIResponse into out.
func decodeData(t *testing.T, output string, out any) CLIResponse {
	t.Helper()
	var resp struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &resp), "output: %s", output)
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp.CLIResponse
}

const brokenJoinCUE = `
model: Broken: {
	operations: {
		join: {"0": {"0": "0", "1": "1"}, "1": {"0": "0", "1": "1"}}
		meet: {"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "1"}}
	}
}
`
