package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidDocument(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 2 sequence(s) valid")
}

func TestValidate_EmptyListFails(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join("testdata", "invalid.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, "empty_list")
	assert.Contains(t, out, ErrCodeEmptySeq)
	assert.Contains(t, out, "line 3", "violation is reported with its source line")
}

func TestValidate_JSONFormat(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeEmptySeq, resp.Error.Code)
}

func TestValidate_JSONFormatValid(t *testing.T) {
	out, err := execute(t, "--format", "json", "validate", filepath.Join("testdata", "valid.yaml"))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidate_MissingFile(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join("testdata", "missing.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestValidate_BadRoot(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join("testdata", "bad_root.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateDocument_OnlyEmptyListsFlagged(t *testing.T) {
	doc := &Document{
		Names: []string{"good", "bad"},
		Lists: map[string][]string{
			"good": {"x"},
			"bad":  {},
		},
		Lines: map[string]int{"good": 1, "bad": 2},
	}

	errs := validateDocument(doc, &OutputFormatter{Format: "text"})
	require.Len(t, errs, 1)
	assert.Equal(t, "bad", errs[0].Name)
	assert.Equal(t, ErrCodeEmptySeq, errs[0].Code)
	assert.Equal(t, 2, errs[0].Line)
}
