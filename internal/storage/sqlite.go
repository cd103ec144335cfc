// Package storage provides SQLite-based persistence for match results.
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

// Result values stored in the matches table.
const (
	ResultDraw      = "draw"
	ResultAbandoned = "abandoned"
)

// Store manages the SQLite database connection for match results.
type Store struct {
	db *sql.DB
}

// MatchResult records the outcome of one finished game.
type MatchResult struct {
	ID        int64
	Mode      string // "pvp" or "cpu"
	BoardSize int
	Result    string // winning symbol, ResultDraw, or ResultAbandoned
	Moves     int    // moves on the board at game end
	Duration  int    // seconds from first render to game over
	CreatedAt time.Time
}

// Summary aggregates stored match results.
type Summary struct {
	Total  int
	Draws  int
	BySide map[string]int // wins keyed by winning symbol
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			result TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished game. Returns the inserted row ID.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (mode, board_size, result, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		m.Mode, m.BoardSize, m.Result, m.Moves, m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, board_size, result, moves, duration_secs, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Mode, &m.BoardSize, &m.Result, &m.Moves, &m.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseCreatedAt(createdAt)
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Summarize aggregates all stored matches for the given mode. An empty
// mode aggregates everything.
func (s *Store) Summarize(mode string) (Summary, error) {
	query := `SELECT result, COUNT(*) FROM matches GROUP BY result`
	args := []any{}
	if mode != "" {
		query = `SELECT result, COUNT(*) FROM matches WHERE mode = ? GROUP BY result`
		args = append(args, mode)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize matches: %w", err)
	}
	defer rows.Close()

	sum := Summary{BySide: make(map[string]int)}
	for rows.Next() {
		var result string
		var count int
		if err := rows.Scan(&result, &count); err != nil {
			return Summary{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Total += count
		if result == ResultDraw {
			sum.Draws += count
		} else if result != ResultAbandoned {
			sum.BySide[result] += count
		}
	}

	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sum, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a
// SQLite datetime string.
func parseCreatedAt(v any) time.Time {
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
