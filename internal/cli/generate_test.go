package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateReferenceWalks(t *testing.T) {
	out, err := executeRoot(t, "generate", "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t, "[-1, 0, 1, 0, -1, -2, -1, 0, -1, -2]\n", out)

	out, err = executeRoot(t, "generate", "--seed", "42", "--count", "10", "--x0", "0", "--step", "1")
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, -1, -2, -1, 0, 1, 0, -1, -2]\n", out)
}

func TestGenerateZeroCount(t *testing.T) {
	out, err := executeRoot(t, "generate", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestGenerateSummary(t *testing.T) {
	out, err := executeRoot(t, "generate", "--seed", "1", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "steps=10 final=-2 min=-2 max=1 mean=-0.7000 stddev=0.9000 returns=3")
}

func TestGenerateJSON(t *testing.T) {
	out, err := executeRoot(t, "generate", "--seed", "42", "--summary", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(42), resp.Data.Parameters.Seed)
	assert.Equal(t, []int64{1, 0, -1, -2, -1, 0, 1, 0, -1, -2}, []int64(resp.Data.Data))
	require.NotNil(t, resp.Data.Summary)
	assert.Equal(t, int64(-2), resp.Data.Summary.Final)
	assert.Regexp(t, `^[0-9a-f]{64}$`, resp.Data.Digest)

	// The digest identifies the walk, not the invocation.
	again, err := executeRoot(t, "generate", "--seed", "42", "--count", "10", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, again, resp.Data.Digest)
}

func TestGenerateFromConfigWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 4\nseed: 1\nstep: 2\nx0: 10\n"), 0644))

	out, err := executeRoot(t, "generate", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "[8, 10, 12, 10]\n", out)

	out, err = executeRoot(t, "generate", "--config", path, "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, "[12, 10, 8, 6]\n", out)
}

func TestGenerateInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"negative count", []string{"generate", "--count", "-3"}, "count must be non-negative"},
		{"zero step", []string{"generate", "--step", "0"}, "step must be positive"},
		{"huge count", []string{"generate", "--count", "4611686018427387904"}, "count must be at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E002]")
			assert.True(t, IsReported(err))
		})
	}
}

func TestGenerateBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.cue")
	require.NoError(t, os.WriteFile(path, []byte("count: -1\n"), 0644))

	out, err := executeRoot(t, "generate", "--config", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestGenerateRejectsArgs(t *testing.T) {
	_, err := executeRoot(t, "generate", "extra")
	require.Error(t, err)
}
