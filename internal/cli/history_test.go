package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Disabled(t *testing.T) {
	_, _, err := execute(NewHistoryCommand(newTestRootOptions("text")))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "history is disabled")
}

func TestHistory_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	stdout, _, err := execute(NewHistoryCommand(newTestRootOptions("text")), "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", stdout)
}

func TestHistory_AfterRun(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"a.txt":   sample,
		"bad.txt": "10001 x\n",
	})
	dbPath := filepath.Join(t.TempDir(), "history.db")

	_, _, err := execute(NewRunCommand(newTestRootOptions("text")), "--data-dir", dir, "--db", dbPath, "a.txt", "bad.txt")
	require.Error(t, err)

	t.Run("Text", func(t *testing.T) {
		stdout, _, err := execute(NewHistoryCommand(newTestRootOptions("text")), "--db", dbPath)
		require.NoError(t, err)

		assert.Contains(t, stdout, "RECORDED")
		assert.Contains(t, stdout, "a.txt")
		assert.Contains(t, stdout, "ok")
		assert.Contains(t, stdout, "error: input bad.txt")
	})

	t.Run("JSONFilter", func(t *testing.T) {
		stdout, _, err := execute(NewHistoryCommand(newTestRootOptions("json")), "--db", dbPath, "--input", "a.txt")
		require.NoError(t, err)

		var entries []HistoryEntryJSON
		require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "a.txt", entries[0].Input)
		assert.Equal(t, int64(11), entries[0].Distance)
		assert.Equal(t, 6, entries[0].Records)
		assert.Equal(t, "counting", entries[0].Kernel)
		assert.Equal(t, int64(4), entries[0].ElapsedMS)
	})

	t.Run("Limit", func(t *testing.T) {
		stdout, _, err := execute(NewHistoryCommand(newTestRootOptions("json")), "--db", dbPath, "--limit", "1")
		require.NoError(t, err)

		var entries []HistoryEntryJSON
		require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
		assert.Len(t, entries, 1)
	})
}
