package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct{ valid, invalid int }

func (s summary) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d valid, %d invalid\n", s.valid, s.invalid)
	return err
}

func newFormatter(format string, verbose bool) (*OutputFormatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &OutputFormatter{Format: format, Writer: buf, Verbose: verbose}, buf
}

func decodeResponse(t *testing.T, buf *bytes.Buffer) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	t.Run("json envelope", func(t *testing.T) {
		f, buf := newFormatter("json", false)
		require.NoError(t, f.Success(map[string]int{"models": 3}))

		resp := decodeResponse(t, buf)
		assert.Equal(t, "ok", resp.Status)
		assert.Nil(t, resp.Error)
		assert.Equal(t, map[string]any{"models": float64(3)}, resp.Data)
		assert.Contains(t, buf.String(), "\n  \"status\"", "output is indented")
	})

	t.Run("text writer", func(t *testing.T) {
		f, buf := newFormatter("text", false)
		require.NoError(t, f.Success(summary{valid: 2}))
		assert.Equal(t, "2 valid, 0 invalid\n", buf.String())
	})

	t.Run("plain text", func(t *testing.T) {
		f, buf := newFormatter("text", false)
		require.NoError(t, f.Success("catalogue is empty"))
		assert.Equal(t, "catalogue is empty\n", buf.String())
	})

	t.Run("symbols unescaped", func(t *testing.T) {
		f, buf := newFormatter("json", false)
		require.NoError(t, f.Success(map[string]string{"edge": "⟙ > a & b < ⟘"}))
		assert.Contains(t, buf.String(), "⟙ > a & b < ⟘")
	})
}

func TestError(t *testing.T) {
	details := map[string]string{"file": "models.cue"}

	t.Run("json", func(t *testing.T) {
		f, buf := newFormatter("json", false)
		require.NoError(t, f.Error(ErrCodeLoadFailed, "unexpected token", details))

		resp := decodeResponse(t, buf)
		assert.Equal(t, "error", resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeLoadFailed, resp.Error.Code)
		assert.Equal(t, "unexpected token", resp.Error.Message)
		assert.Equal(t, map[string]any{"file": "models.cue"}, resp.Error.Details)
		assert.Nil(t, resp.Data)
	})

	t.Run("text hides details", func(t *testing.T) {
		f, buf := newFormatter("text", false)
		require.NoError(t, f.Error(ErrCodeInvalidModel, "T1: join is not commutative", details))
		assert.Equal(t, "Error [E301]: T1: join is not commutative\n", buf.String())
	})

	t.Run("verbose text shows details", func(t *testing.T) {
		f, buf := newFormatter("text", true)
		require.NoError(t, f.Error(ErrCodeInvalidModel, "T1: join is not commutative", details))
		assert.Contains(t, buf.String(), "Error [E301]")
		assert.Contains(t, buf.String(), "Details: map[file:models.cue]")
	})
}

func TestFailure(t *testing.T) {
	t.Run("json carries data and error", func(t *testing.T) {
		f, buf := newFormatter("json", false)
		err := f.Failure(summary{valid: 1, invalid: 2}, ErrCodeInvalidModel, "2 model(s) invalid")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))

		resp := decodeResponse(t, buf)
		assert.Equal(t, "error", resp.Status)
		assert.NotNil(t, resp.Data)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeInvalidModel, resp.Error.Code)
	})

	t.Run("text prints result only", func(t *testing.T) {
		f, buf := newFormatter("text", false)
		err := f.Failure(summary{invalid: 1}, ErrCodeInvalidModel, "1 model(s) invalid")
		require.Error(t, err)
		assert.Equal(t, "1 model(s) invalid", err.Error())
		assert.Equal(t, "0 valid, 1 invalid\n", buf.String())
	})
}

func TestExitError(t *testing.T) {
	cause := fmt.Errorf("disk full")

	wrapped := WrapExitError(ExitCommandError, "open catalogue", cause)
	assert.Equal(t, "open catalogue: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("import: %w", wrapped)))

	bare := NewExitError(ExitFailure, "1 scenario(s) failed")
	assert.Equal(t, "1 scenario(s) failed", bare.Error())
	assert.Nil(t, bare.Unwrap())

	assert.Equal(t, ExitFailure, GetExitCode(cause))
}
