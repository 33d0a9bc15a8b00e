// Package roster holds the in-memory player directory and the precomputed leaderboard.
package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// The athlete index lists two active players named Lamar Jackson.
// Only the quarterback (jersey 8) is kept.
const (
	ambiguousName   = "Lamar Jackson"
	ambiguousJersey = "8"
)

// Directory is a read-only index of active athletes.
// A nil Directory behaves like an empty one.
type Directory struct {
	athletes []schema.AthleteSummary
	lower    []string       // lowercase names, parallel to athletes
	byName   map[string]int // lowercase name -> first index
}

// NewDirectory filters the raw athlete index into a Directory. Inactive athletes,
// unnamed entries and placeholder names containing brackets are dropped.
func NewDirectory(items []schema.AthleteSummary) *Directory {
	d := &Directory{byName: make(map[string]int, len(items))}
	for _, item := range items {
		if !keepAthlete(item) {
			continue
		}
		name := strings.ToLower(item.FullName)
		if _, ok := d.byName[name]; !ok {
			d.byName[name] = len(d.athletes)
		}
		d.athletes = append(d.athletes, item)
		d.lower = append(d.lower, name)
	}
	return d
}

// keepAthlete reports whether an index entry belongs in the directory.
func keepAthlete(item schema.AthleteSummary) bool {
	if item.Active != nil && !*item.Active {
		return false
	}
	if item.FullName == "" || strings.ContainsAny(item.FullName, "[]") {
		return false
	}
	if item.FullName == ambiguousName {
		return item.Jersey == ambiguousJersey
	}
	return true
}

// LoadDirectory fetches the athlete index from the provider and builds a Directory.
func LoadDirectory(ctx context.Context, provider contract.StatsProvider) (*Directory, error) {
	items, err := provider.ListAthletes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load athlete index: %w", err)
	}
	return NewDirectory(items), nil
}

// Len returns the number of athletes in the directory.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.athletes)
}

// All returns a copy of every athlete, in index order.
func (d *Directory) All() []schema.AthleteSummary {
	if d == nil {
		return nil
	}
	return append([]schema.AthleteSummary(nil), d.athletes...)
}

// Names returns every athlete name, in index order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.athletes))
	for i, a := range d.athletes {
		names[i] = a.FullName
	}
	return names
}

// FindByName returns the athlete whose name matches exactly, ignoring case.
func (d *Directory) FindByName(name string) (schema.AthleteSummary, bool) {
	if d == nil {
		return schema.AthleteSummary{}, false
	}
	i, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return schema.AthleteSummary{}, false
	}
	return d.athletes[i], true
}

// Find resolves a free-text query: an exact name match wins, otherwise the first
// athlete whose name contains the query.
func (d *Directory) Find(query string) (schema.AthleteSummary, bool) {
	if a, ok := d.FindByName(query); ok {
		return a, true
	}
	matches := d.Search(query, 1)
	if len(matches) == 0 {
		return schema.AthleteSummary{}, false
	}
	return matches[0], true
}

// Search returns up to limit athletes whose names contain the query, ignoring case.
// A limit of zero or less returns every match.
func (d *Directory) Search(query string, limit int) []schema.AthleteSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if d == nil || q == "" {
		return nil
	}
	var matches []schema.AthleteSummary
	for i, name := range d.lower {
		if !strings.Contains(name, q) {
			continue
		}
		matches = append(matches, d.athletes[i])
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}

// ExtractName returns the first athlete name contained in text.
func (d *Directory) ExtractName(text string) (string, bool) {
	names := d.ExtractNames(text, 1)
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// ExtractNames returns up to n distinct athlete names contained in text, in index order.
func (d *Directory) ExtractNames(text string, n int) []string {
	if d == nil {
		return nil
	}
	return extractNames(text, d.athletes, d.lower, func(a schema.AthleteSummary) string { return a.FullName }, n)
}

// extractNames scans candidates in order and collects names that appear in text.
func extractNames[T any](text string, items []T, lower []string, name func(T) string, n int) []string {
	haystack := strings.ToLower(text)
	seen := make(map[string]struct{})
	var found []string
	for i, needle := range lower {
		if needle == "" || !strings.Contains(haystack, needle) {
			continue
		}
		full := name(items[i])
		if _, ok := seen[full]; ok {
			continue
		}
		seen[full] = struct{}{}
		found = append(found, full)
		if n > 0 && len(found) == n {
			break
		}
	}
	return found
}
