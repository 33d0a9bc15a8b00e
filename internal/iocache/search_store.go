package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// searchTable holds one row per searched player.
const searchTable = "gridiron_player_searches"

// searchColumns is the select list shared by every search query.
const searchColumns = "id, player_id, search_count, search_term, name, position, team, headshot_url, updated_at"

// SearchStoreImpl counts player lookups using SQL backends.
type SearchStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
	now     func() time.Time
}

var _ contract.SearchStore = &SearchStoreImpl{} // Compile-time check

// NewSearchStore opens the search database and makes sure its table exists.
func NewSearchStore(backend schema.DatabaseBackend, connStr string) (*SearchStoreImpl, error) {
	if _, ok := schema.ValidSearchBackends[backend]; !ok || backend == schema.NoneBackend {
		return nil, fmt.Errorf("unsupported search backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	db, err := openSQL(backend, connStr, GetSearchDBFilePath())
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateSearchTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", searchTable, err)
	}

	return &SearchStoreImpl{db: db, backend: backend, connStr: connStr, now: time.Now}, nil
}

// getCreateSearchTableQuery returns the CREATE TABLE query for the given backend.
// updated_at holds unix milliseconds on every backend.
func getCreateSearchTableQuery(backend schema.DatabaseBackend) string {
	quoted := quoteTableName(searchTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id CHAR(36) PRIMARY KEY,
				player_id VARCHAR(32) NOT NULL UNIQUE,
				search_count INT NOT NULL DEFAULT 1,
				search_term VARCHAR(255) NOT NULL,
				name VARCHAR(255) NOT NULL,
				position VARCHAR(8) NOT NULL DEFAULT '',
				team VARCHAR(255) NOT NULL DEFAULT '',
				headshot_url VARCHAR(512) NOT NULL DEFAULT '',
				updated_at BIGINT NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				player_id TEXT NOT NULL UNIQUE,
				search_count INTEGER NOT NULL DEFAULT 1,
				search_term TEXT NOT NULL,
				name TEXT NOT NULL,
				position TEXT NOT NULL DEFAULT '',
				team TEXT NOT NULL DEFAULT '',
				headshot_url TEXT NOT NULL DEFAULT '',
				updated_at BIGINT NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				player_id TEXT NOT NULL UNIQUE,
				search_count INTEGER NOT NULL DEFAULT 1,
				search_term TEXT NOT NULL,
				name TEXT NOT NULL,
				position TEXT NOT NULL DEFAULT '',
				team TEXT NOT NULL DEFAULT '',
				headshot_url TEXT NOT NULL DEFAULT '',
				updated_at INTEGER NOT NULL
			);
		`, quoted)
	}
}

// getSearchUpsertQuery inserts a first search or bumps the count of an existing one.
func (s *SearchStoreImpl) getSearchUpsertQuery() string {
	quoted := quoteTableName(searchTable, s.backend)
	insert := fmt.Sprintf(`INSERT INTO %s (id, player_id, search_count, search_term, name, position, team, headshot_url, updated_at)
		VALUES (?, ?, 1, ?, ?, ?, ?, ?, ?)`, quoted)

	switch s.backend {
	case schema.MySQLBackend:
		return insert + ` AS new ON DUPLICATE KEY UPDATE
			search_count = ` + quoted + `.search_count + 1,
			search_term = new.search_term, name = new.name, position = new.position,
			team = new.team, headshot_url = new.headshot_url, updated_at = new.updated_at`

	case schema.PostgreSQLBackend:
		return rebind(insert, s.backend) + ` ON CONFLICT (player_id) DO UPDATE SET
			search_count = ` + quoted + `.search_count + 1,
			search_term = EXCLUDED.search_term, name = EXCLUDED.name, position = EXCLUDED.position,
			team = EXCLUDED.team, headshot_url = EXCLUDED.headshot_url, updated_at = EXCLUDED.updated_at`

	default: // SQLite
		return insert + ` ON CONFLICT(player_id) DO UPDATE SET
			search_count = search_count + 1,
			search_term = excluded.search_term, name = excluded.name, position = excluded.position,
			team = excluded.team, headshot_url = excluded.headshot_url, updated_at = excluded.updated_at`
	}
}

// RecordSearch adds one search for a player and returns the updated row.
// Profile fields are refreshed from the latest lookup.
func (s *SearchStoreImpl) RecordSearch(player schema.Player, searchTerm string) (schema.SearchRecord, error) {
	if player.ID == "" {
		return schema.SearchRecord{}, fmt.Errorf("cannot record a search without a player id")
	}

	updatedAt := s.now().UnixMilli()
	_, err := s.db.Exec(s.getSearchUpsertQuery(),
		uuid.NewString(), player.ID, searchTerm, player.Name,
		string(player.Position), player.Team, player.HeadshotURL, updatedAt)
	if err != nil {
		return schema.SearchRecord{}, fmt.Errorf("failed to record search for %s: %w", player.ID, err)
	}

	query := rebind(fmt.Sprintf("SELECT %s FROM %s WHERE player_id = ?", searchColumns, quoteTableName(searchTable, s.backend)), s.backend)
	return scanSearchRecord(s.db.QueryRow(query, player.ID))
}

// Trending returns the most searched players, most recent first on ties.
func (s *SearchStoreImpl) Trending(limit int) ([]schema.SearchRecord, error) {
	if limit <= 0 {
		return []schema.SearchRecord{}, nil
	}
	query := rebind(fmt.Sprintf("SELECT %s FROM %s ORDER BY search_count DESC, updated_at DESC LIMIT ?",
		searchColumns, quoteTableName(searchTable, s.backend)), s.backend)
	records, err := s.querySearches(query, limit)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].HeadshotURL == "" {
			records[i].HeadshotURL = schema.FallbackHeadshot
		}
	}
	return records, nil
}

// ListSearches returns every row ordered by player id.
func (s *SearchStoreImpl) ListSearches() ([]schema.SearchRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY player_id", searchColumns, quoteTableName(searchTable, s.backend))
	return s.querySearches(query)
}

func (s *SearchStoreImpl) querySearches(query string, args ...any) ([]schema.SearchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []schema.SearchRecord{}
	for rows.Next() {
		record, err := scanSearchRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate searches: %w", err)
	}
	return records, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSearchRecord(row rowScanner) (schema.SearchRecord, error) {
	var record schema.SearchRecord
	var updatedAt int64
	err := row.Scan(&record.ID, &record.PlayerID, &record.Count, &record.SearchTerm, &record.Name,
		&record.Position, &record.Team, &record.HeadshotURL, &updatedAt)
	if err != nil {
		return schema.SearchRecord{}, fmt.Errorf("failed to scan search record: %w", err)
	}
	record.UpdatedAt = time.UnixMilli(updatedAt)
	return record, nil
}

// GetStatus returns status information about the search store.
func (s *SearchStoreImpl) GetStatus() (schema.SearchStatus, error) {
	status := schema.SearchStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.db == nil {
		return status, nil
	}

	var total, last sql.NullInt64
	query := fmt.Sprintf("SELECT COUNT(*), SUM(search_count), MAX(updated_at) FROM %s", quoteTableName(searchTable, s.backend))
	if err := s.db.QueryRow(query).Scan(&status.TotalPlayers, &total, &last); err != nil {
		return status, fmt.Errorf("failed to get search counts: %w", err)
	}
	if status.TotalPlayers == 0 {
		return status, nil
	}
	status.TotalSearches = int(total.Int64)
	status.LastSearchTime = time.UnixMilli(last.Int64)
	status.TableSizeBytes = tableSize(s.db, s.backend, searchTable, s.connStr, status.TotalPlayers)
	return status, nil
}

// Close closes the underlying DB connection.
func (s *SearchStoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
