package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name   string
		points float64
		label  string
	}{
		{"deep league", 0, DeepLeagueValue},
		{"bench", 45.5, BenchValue},
		{"flex", 100, FlexValue},
		{"strong starter", 250, StrongStarterValue},
		{"must start", 320.4, MustStartValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.points)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "leaderboard.csv")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	cache := GetCacheDBFilePath()
	assert.Contains(t, cache, ".gridiron_cache.db")
	assert.True(t, strings.HasPrefix(cache, homeDir), "path %s should start with home dir %s", cache, homeDir)

	searches := GetSearchDBFilePath()
	assert.Contains(t, searches, ".gridiron_searches.db")
	assert.NotEqual(t, cache, searches)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"short name untouched", "Josh Allen", 20, "Josh Allen"},
		{"exact width untouched", "Josh Allen", 10, "Josh Allen"},
		{"long name truncated", "Amon-Ra St. Brown", 10, "Amon-Ra..."},
		{"tiny width untouched", "Amon-Ra St. Brown", 3, "Amon-Ra St. Brown"},
		{"multibyte runes", "Zoë Ångström-Ødegaard", 8, "Zoë Å..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"No", false, false},
		{"false", false, false},
		{"0", false, false},
		{"", false, true},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCSVList(t *testing.T) {
	assert.Nil(t, ParseCSVList(""))
	assert.Nil(t, ParseCSVList(" , ,"))
	assert.Equal(t, []string{"Josh Allen", "Saquon Barkley"}, ParseCSVList("Josh Allen, Saquon Barkley,"))
}
