package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/gridiron/schema"
)

// Tier label constants, mirroring schema.GetPlainLabel.
const (
	MustStartValue     = "Must-start"
	StrongStarterValue = "Strong starter"
	FlexValue          = "Flex option"
	BenchValue         = "Bench/depth"
	DeepLeagueValue    = "Deep league"
)

// Color variables for console output.
var (
	MustStartColor     = color.New(color.FgGreen, color.Bold) // MustStartColor marks elite producers.
	StrongStarterColor = color.New(color.FgCyan, color.Bold)  // StrongStarterColor marks weekly starters.
	FlexColor          = color.New(color.FgYellow)            // FlexColor marks matchup-dependent plays.
	BenchColor         = color.New(color.FgMagenta)           // BenchColor marks depth pieces.
	DeepLeagueColor    = color.New(color.FgHiBlack)           // DeepLeagueColor marks players with no production.
)

// GetColorLabel returns a colored tier label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(points float64) string {
	text := schema.GetPlainLabel(points)

	switch text {
	case MustStartValue:
		return MustStartColor.Sprint(text)
	case StrongStarterValue:
		return StrongStarterColor.Sprint(text)
	case FlexValue:
		return FlexColor.Sprint(text)
	case BenchValue:
		return BenchColor.Sprint(text)
	default:
		return DeepLeagueColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for response caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gridiron_cache.db"
	}
	return filepath.Join(homeDir, ".gridiron_cache.db")
}

// GetSearchDBFilePath returns the path to the SQLite DB file for search counts.
func GetSearchDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gridiron_searches.db"
	}
	return filepath.Join(homeDir, ".gridiron_searches.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseCSVList splits a comma-separated flag value, dropping blanks.
func ParseCSVList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
