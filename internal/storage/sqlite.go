// Package storage provides SQLite-based persistence for run progression:
// lifetime stats, the leaderboard, achievements, and purchased upgrades.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderboardSize bounds the number of retained leaderboard entries.
const LeaderboardSize = 10

// Store manages the SQLite database connection for progression persistence.
type Store struct {
	db *sql.DB
}

// LeaderboardEntry is a single retained run result, ordered by score.
type LeaderboardEntry struct {
	Score     int
	CreatedAt time.Time
}

// Date returns the entry date formatted for display.
func (e LeaderboardEntry) Date() string {
	return e.CreatedAt.Format("2006-01-02")
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS stats (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_score ON leaderboard(score DESC);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS purchases (
			id TEXT PRIMARY KEY,
			purchased_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Stat returns the value stored under key, or 0 if the key is absent.
func (s *Store) Stat(key string) (int64, error) {
	var v sql.NullInt64
	err := s.db.QueryRow("SELECT value FROM stats WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read stat %s: %w", key, err)
	}
	return v.Int64, nil
}

// SetStat stores value under key, overwriting any previous value.
func (s *Store) SetStat(key string, value int64) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set stat %s: %w", key, err)
	}
	return nil
}

// UpdateStat applies fn to the current value of key inside a transaction and
// stores the result. Returns the new value.
func (s *Store) UpdateStat(key string, fn func(int64) int64) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var v sql.NullInt64
	err = tx.QueryRow("SELECT value FROM stats WHERE key = ?", key).Scan(&v)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("storage: cannot read stat %s: %w", key, err)
	}

	next := fn(v.Int64)
	_, err = tx.Exec(
		`INSERT INTO stats (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, next,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update stat %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit stat %s: %w", key, err)
	}
	return next, nil
}

// RecordScore inserts a run result into the leaderboard and trims it back to
// the top LeaderboardSize entries by score.
func (s *Store) RecordScore(score int) error {
	if _, err := s.db.Exec("INSERT INTO leaderboard (score) VALUES (?)", score); err != nil {
		return fmt.Errorf("storage: cannot record score: %w", err)
	}

	_, err := s.db.Exec(
		`DELETE FROM leaderboard WHERE id NOT IN (
			SELECT id FROM leaderboard ORDER BY score DESC, created_at ASC LIMIT ?
		)`,
		LeaderboardSize,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot trim leaderboard: %w", err)
	}
	return nil
}

// Leaderboard retrieves up to limit entries ordered by score descending.
func (s *Store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT score, created_at FROM leaderboard
		 ORDER BY score DESC, created_at ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var createdAt any
		if err := rows.Scan(&e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Achievements returns the set of unlocked achievement IDs.
func (s *Store) Achievements() (map[string]bool, error) {
	return s.idSet("achievements")
}

// UnlockAchievement marks an achievement as unlocked. Idempotent.
func (s *Store) UnlockAchievement(id string) error {
	_, err := s.db.Exec(
		"INSERT INTO achievements (id) VALUES (?) ON CONFLICT(id) DO NOTHING", id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock achievement %s: %w", id, err)
	}
	return nil
}

// Purchases returns the set of purchased upgrade IDs.
func (s *Store) Purchases() (map[string]bool, error) {
	return s.idSet("purchases")
}

// Purchase marks an upgrade as purchased. Idempotent.
func (s *Store) Purchase(id string) error {
	_, err := s.db.Exec(
		"INSERT INTO purchases (id) VALUES (?) ON CONFLICT(id) DO NOTHING", id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record purchase %s: %w", id, err)
	}
	return nil
}

// idSet reads a one-column id table into a membership map.
func (s *Store) idSet(table string) (map[string]bool, error) {
	rows, err := s.db.Query("SELECT id FROM " + table) //nolint:gosec // table is a literal
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", table, err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		set[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return set, nil
}

// parseTime handles both time.Time and string datetime representations
// returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
