package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarkac/advent-of-code/internal/testutil"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:   "json",
		Writer:   buf,
		TraceIDs: testutil.NewFixedIDGenerator("trace-1"),
	}

	err := formatter.Success(map[string]string{"result": "success"})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "trace-1", resp.TraceID)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Error(ErrCodeInvalidDate, "no puzzle", map[string]int{"day": 30})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidDate, resp.Error.Code)
	assert.Equal(t, "no puzzle", resp.Error.Message)
	assert.NotNil(t, resp.Error.Details)
	assert.Empty(t, resp.TraceID)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Success("All good"))
	assert.Equal(t, "All good\n", buf.String())
}

func TestOutputFormatter_TextErrorGoesToErrWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf, ErrWriter: errBuf, Verbose: true}

	require.NoError(t, formatter.Error("E_X", "went wrong", "ctx"))
	assert.Empty(t, buf.String())
	assert.Equal(t, "Error [E_X]: went wrong\nDetails: ctx\n", errBuf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}
	formatter.VerboseLog("hidden %d", 1)
	assert.Empty(t, buf.String())

	formatter.Verbose = true
	formatter.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", buf.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: &bytes.Buffer{}, ErrWriter: errBuf}
	cause := errors.New("input: not found")

	err := formatter.Fail(ExitCommandError, ErrCodeInputNotFound, cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errBuf.String(), "Error [E_INPUT_NOT_FOUND]: input: not found")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
}

func TestUUIDv7Generator(t *testing.T) {
	id, err := uuid.Parse(UUIDv7Generator{}.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewStyles(t *testing.T) {
	plain := NewStyles(&bytes.Buffer{}, "never")
	assert.Equal(t, "✓", plain.Pass.Render("✓"))

	auto := NewStyles(&bytes.Buffer{}, "auto")
	assert.Equal(t, "x", auto.Header.Render("x"))

	forced := NewStyles(&bytes.Buffer{}, "always")
	assert.Contains(t, forced.Fail.Render("✗"), "\x1b[")
}
