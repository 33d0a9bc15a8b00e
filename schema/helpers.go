package schema

import (
	"strings"
	"unicode"
)

// nameSuffixes are generational suffixes dropped when abbreviating.
var nameSuffixes = map[string]struct{}{
	"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
}

// cleanParts trims punctuation from the ends of each name part.
func cleanParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '\'' && r != '.'
		})
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// getInitial extracts the first rune of a name part for Unicode safety.
func getInitial(part string) string {
	rr := []rune(part)
	if len(rr) > 0 {
		return string(rr[0])
	}
	return ""
}

// AbbreviateName formats "Patrick Mahomes II" to "P. Mahomes".
// Single-word names are returned unchanged.
func AbbreviateName(name string) string {
	trimmedName := strings.Trim(strings.TrimSpace(name), "()\"'`")
	cleaned := cleanParts(strings.Fields(trimmedName))

	// Drop generational suffixes as long as a surname remains.
	for len(cleaned) > 2 {
		last := strings.ToLower(strings.TrimSuffix(cleaned[len(cleaned)-1], "."))
		if _, ok := nameSuffixes[last]; !ok {
			break
		}
		cleaned = cleaned[:len(cleaned)-1]
	}

	switch {
	case len(cleaned) >= 2:
		initial := getInitial(cleaned[0])
		return initial + ". " + cleaned[len(cleaned)-1]
	case len(cleaned) == 1:
		return cleaned[0]
	default:
		return trimmedName
	}
}

// NormalizePosition upper-cases a position code and maps known aliases.
// Unknown codes are returned upper-cased as-is.
func NormalizePosition(raw string) Position {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if pos, ok := PositionAliases[lowered]; ok {
		return pos
	}
	return Position(strings.ToUpper(lowered))
}
