//go:build basic

package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGridironWithSQLite runs the CLI with the default SQLite backends.
func TestGridironWithSQLite(t *testing.T) {
	isolateHome(t)
	t.Setenv("GRIDIRON_SEARCH_BACKEND", "sqlite")

	runPlayerWorkflow(t)

	out, err := runGridironCommand(t, "score", "Lamar Jackson", "--season", "2024", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2024")

	out, err = runGridironCommand(t, "searches", "trending", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Lamar Jackson")

	exportFile := filepath.Join(t.TempDir(), "searches.parquet")
	_, err = runGridironCommand(t, "searches", "export", "--output-file", exportFile)
	require.NoError(t, err)
	assert.FileExists(t, exportFile)

	_, err = runGridironCommand(t, "searches", "clear")
	require.NoError(t, err)
	_, err = runGridironCommand(t, "searches", "migrate")
	require.NoError(t, err)
	_, err = runGridironCommand(t, "searches", "status")
	require.NoError(t, err)
}

// TestGridironWithoutCache runs the CLI with caching and search tracking disabled.
func TestGridironWithoutCache(t *testing.T) {
	isolateHome(t)
	t.Setenv("GRIDIRON_CACHE_BACKEND", "none")

	out, err := runGridironCommand(t, "compare", "Lamar Jackson", "Josh Allen")
	require.NoError(t, err)
	assert.Contains(t, out, "Lamar Jackson")

	_, err = runGridironCommand(t, "searches", "trending")
	assert.Error(t, err, "trending needs a search backend")

	out, err = runGridironCommand(t, "scoring", "--scoring-preset", "half-ppr")
	require.NoError(t, err)
	assert.Contains(t, out, "0.5")
}
