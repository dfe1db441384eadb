package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "seq.db")
}

func TestStore_PutGet(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, "store", "put", filepath.Join("testdata", "valid.yaml"), "servers", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "saved servers revision")

	out, err = execute(t, "store", "get", "servers", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "elements: [alpha:8080 beta:8080 gamma:8080]")
}

func TestStore_PutEmptyRejected(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, "store", "put", filepath.Join("testdata", "invalid.yaml"), "empty_list", "--db", db)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeEmptySeq)
}

func TestStore_GetMissing(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, "store", "get", "nothing", "--db", db)

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestStore_Revs(t *testing.T) {
	db := tempDB(t)

	_, err := execute(t, "store", "put", filepath.Join("testdata", "valid.yaml"), "servers", "--db", db)
	require.NoError(t, err)
	_, err = execute(t, "store", "put", filepath.Join("testdata", "valid.yaml"), "servers", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "--format", "json", "store", "revs", "servers", "--db", db)
	require.NoError(t, err)

	var resp struct {
		Data []struct {
			ID  string `json:"id"`
			Len int    `json:"len"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Greater(t, resp.Data[0].ID, resp.Data[1].ID, "UUIDv7 tokens sort newest first")
	assert.Equal(t, 3, resp.Data[0].Len)
}
