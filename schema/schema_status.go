package schema

import "time"

// CacheStatus represents the status of the response cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// SearchStatus represents the status of the search count store.
type SearchStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalPlayers   int       `json:"total_players"`
	TotalSearches  int       `json:"total_searches"`
	LastSearchTime time.Time `json:"last_search_time"`
	TableSizeBytes int64     `json:"table_size_bytes"`
}
