// Package storage provides SQLite-based persistence for run statistics and
// battle outcomes. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one completed (or abandoned) run.
type RunEntry struct {
	ID        int64
	Distance  int
	Coins     int
	Battles   int
	Duration  int // Seconds of game time
	CreatedAt time.Time
}

// BattleEntry is one resolved encounter.
type BattleEntry struct {
	ID          int64
	EncounterID string
	Outcome     string
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			distance INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			battles INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(distance DESC);

		CREATE TABLE IF NOT EXISTS battles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			encounter_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_battles_encounter ON battles(encounter_id);
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

// RecordRun stores a finished run.
func (s *Store) RecordRun(distance, coins, battles int, duration time.Duration) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (distance, coins, battles, duration_secs) VALUES (?, ?, ?, ?)",
		distance, coins, battles, int(duration.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// RecordBattle stores a resolved encounter outcome.
func (s *Store) RecordBattle(encounterID, outcome string) error {
	_, err := s.db.Exec(
		"INSERT INTO battles (encounter_id, outcome) VALUES (?, ?)",
		encounterID, outcome,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record battle: %w", err)
	}
	return nil
}

// TopRuns returns up to limit runs ordered by distance descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		"SELECT id, distance, coins, battles, duration_secs, created_at FROM runs ORDER BY distance DESC, created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.Distance, &e.Coins, &e.Battles, &e.Duration, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// BattleTally returns how many battles ended with each outcome.
func (s *Store) BattleTally() (map[string]int, error) {
	rows, err := s.db.Query("SELECT outcome, COUNT(*) FROM battles GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int)
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally: %w", err)
		}
		tally[outcome] = count
	}
	return tally, rows.Err()
}
