package roster

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/huangsam/gridiron/schema"
)

// basisKey is the reserved top-level key holding the leaderboard basis.
// Athlete ids are numeric, so it never collides with an entry.
const basisKey = "_basis"

// Leaderboard is a precomputed list of season fantasy totals, highest first.
// A nil Leaderboard behaves like an empty one.
type Leaderboard struct {
	entries []schema.LeaderboardEntry
	lower   []string
	basis   schema.LeaderboardBasis
}

// NewLeaderboard sorts entries by fantasy points descending, then by name.
// The basis defaults to schema.DefaultLeaderboardBasis.
func NewLeaderboard(entries []schema.LeaderboardEntry) *Leaderboard {
	sorted := append([]schema.LeaderboardEntry(nil), entries...)
	SortEntries(sorted)
	lower := make([]string, len(sorted))
	for i, e := range sorted {
		lower[i] = strings.ToLower(e.Name)
	}
	return &Leaderboard{entries: sorted, lower: lower, basis: schema.DefaultLeaderboardBasis()}
}

// WithBasis sets the settings the entries were scored with.
func (l *Leaderboard) WithBasis(basis schema.LeaderboardBasis) *Leaderboard {
	l.basis = basis
	return l
}

// Basis returns the settings the entries were scored with.
func (l *Leaderboard) Basis() schema.LeaderboardBasis {
	if l == nil {
		return schema.DefaultLeaderboardBasis()
	}
	return l.basis
}

// SortEntries orders entries by fantasy points descending, breaking ties by name.
func SortEntries(entries []schema.LeaderboardEntry) {
	slices.SortStableFunc(entries, func(a, b schema.LeaderboardEntry) int {
		if c := cmp.Compare(b.FantasyPoints, a.FantasyPoints); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}

// LoadLeaderboard reads a leaderboard JSON file keyed by athlete id.
func LoadLeaderboard(path string) (*Leaderboard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open leaderboard %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	return ReadLeaderboard(file)
}

// ReadLeaderboard decodes `{"<id>": {"name", "position", "team", "fantasyPoints"}}`
// plus an optional `"_basis": {"season", "scoring"}`.
func ReadLeaderboard(r io.Reader) (*Leaderboard, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	basis := schema.DefaultLeaderboardBasis()
	entries := make([]schema.LeaderboardEntry, 0, len(raw))
	for id, msg := range raw {
		if id == basisKey {
			if err := json.Unmarshal(msg, &basis); err != nil {
				return nil, fmt.Errorf("failed to decode leaderboard basis: %w", err)
			}
			continue
		}
		var e schema.LeaderboardEntry
		if err := json.Unmarshal(msg, &e); err != nil {
			return nil, fmt.Errorf("failed to decode leaderboard entry %s: %w", id, err)
		}
		e.ID = id
		e.Position = schema.NormalizePosition(string(e.Position))
		entries = append(entries, e)
	}
	return NewLeaderboard(entries).WithBasis(basis), nil
}

// SaveLeaderboard writes entries to path in the format LoadLeaderboard reads.
func SaveLeaderboard(path string, basis schema.LeaderboardBasis, entries []schema.LeaderboardEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create leaderboard %s: %w", path, err)
	}
	if err := WriteLeaderboard(file, basis, entries); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteLeaderboard encodes entries keyed by athlete id, with the basis under "_basis".
func WriteLeaderboard(w io.Writer, basis schema.LeaderboardBasis, entries []schema.LeaderboardEntry) error {
	raw := make(map[string]any, len(entries)+1)
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("leaderboard entry %q has no id", e.Name)
		}
		raw[e.ID] = e
	}
	raw[basisKey] = basis
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(raw); err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	return nil
}

// Len returns the number of entries.
func (l *Leaderboard) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// All returns a copy of every entry, highest first.
func (l *Leaderboard) All() []schema.LeaderboardEntry {
	if l == nil {
		return nil
	}
	return append([]schema.LeaderboardEntry(nil), l.entries...)
}

// Top returns the n highest scoring entries.
func (l *Leaderboard) Top(n int) []schema.LeaderboardEntry {
	all := l.All()
	if n >= 0 && n < len(all) {
		return all[:n]
	}
	return all
}

// TopByPosition returns the n highest scoring entries at a position.
func (l *Leaderboard) TopByPosition(position schema.Position, n int) []schema.LeaderboardEntry {
	if l == nil {
		return nil
	}
	var top []schema.LeaderboardEntry
	for _, e := range l.entries {
		if e.Position != position {
			continue
		}
		if len(top) == n {
			break
		}
		top = append(top, e)
	}
	return top
}

// Find returns the entry whose name matches the query exactly, ignoring case,
// or else the highest scoring entry whose name contains it.
func (l *Leaderboard) Find(query string) (schema.LeaderboardEntry, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if l == nil || q == "" {
		return schema.LeaderboardEntry{}, false
	}
	for i, name := range l.lower {
		if name == q {
			return l.entries[i], true
		}
	}
	for i, name := range l.lower {
		if strings.Contains(name, q) {
			return l.entries[i], true
		}
	}
	return schema.LeaderboardEntry{}, false
}

// FindByID returns the entry for an athlete id.
func (l *Leaderboard) FindByID(id string) (schema.LeaderboardEntry, bool) {
	if l == nil {
		return schema.LeaderboardEntry{}, false
	}
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return schema.LeaderboardEntry{}, false
}

// ExtractNames returns up to n distinct entry names contained in text, highest scoring first.
func (l *Leaderboard) ExtractNames(text string, n int) []string {
	if l == nil {
		return nil
	}
	return extractNames(text, l.entries, l.lower, func(e schema.LeaderboardEntry) string { return e.Name }, n)
}
