package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPop(t *testing.T) {
	out, err := execute(t, "pop", filepath.Join("testdata", "valid.yaml"), "servers")
	require.NoError(t, err)

	assert.Contains(t, out, "removed: gamma:8080")
	assert.Contains(t, out, "remaining: [alpha:8080 beta:8080]")
}

func TestPop_SingletonRejected(t *testing.T) {
	out, err := execute(t, "pop", filepath.Join("testdata", "valid.yaml"), "regions")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "nothing removed")
	assert.Contains(t, out, "us-east-1", "the surviving element is named in the message")
}
