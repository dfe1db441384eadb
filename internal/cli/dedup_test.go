package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedup(t *testing.T) {
	path := writeTempDoc(t, "nums:\n  - 1\n  - 1\n  - 2\n  - 2\n  - 1\n")

	out, err := execute(t, "dedup", path, "nums")
	require.NoError(t, err)

	assert.Contains(t, out, "removed 2 duplicate(s)")
	assert.Contains(t, out, "elements: [1 2 1]", "only adjacent runs collapse")
}

func TestDedup_AllSameShrinksToOne(t *testing.T) {
	path := writeTempDoc(t, "xs: [x, x, x]\n")

	out, err := execute(t, "dedup", path, "xs")
	require.NoError(t, err)
	assert.Contains(t, out, "elements: [x]")
}

func TestDedup_Canonical(t *testing.T) {
	// "café" in NFC (precomposed) versus NFD (e + combining acute):
	// byte-distinct, visually identical.
	nfc := "caf\u00e9"
	nfd := "cafe\u0301"
	path := writeTempDoc(t, "names:\n  - "+nfc+"\n  - "+nfd+"\n")

	// Without --canonical the two encodings are distinct elements.
	out, err := execute(t, "dedup", path, "names")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 duplicate(s)")

	// With --canonical they collapse into one.
	out, err = execute(t, "--format", "json", "dedup", path, "names", "--canonical")
	require.NoError(t, err)

	var resp struct {
		Data dedupData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Removed)
	assert.Len(t, resp.Data.Elements, 1)
	assert.True(t, resp.Data.Canonical)
}

func TestDedup_EmptySequenceRejected(t *testing.T) {
	out, err := execute(t, "dedup", filepath.Join("testdata", "invalid.yaml"), "empty_list")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeEmptySeq)
}
