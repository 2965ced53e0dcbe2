// Package storage provides a SQLite-backed ledger of played runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory for the lifetime of the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over"
	OutcomeQuit     Outcome = "quit"
)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db *sql.DB
}

// Run represents a single recorded run.
type Run struct {
	ID        int64
	RunID     string
	Seed      int64
	Score     int
	Best      int
	Level     int
	Ticks     int
	Outcome   Outcome
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalTicks int64
}

// Open creates a private in-memory database and runs migrations.
// The ledger lives only as long as the process.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection to :memory: is a fresh empty database
	db.SetMaxOpenConns(1)

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
			run_id TEXT NOT NULL UNIQUE,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			best INTEGER NOT NULL,
			level INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// RecordRun stores a finished run and returns its generated run ID.
func (s *Store) RecordRun(run Run) (string, error) {
	if run.Outcome == "" {
		run.Outcome = OutcomeQuit
	}
	runID := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, seed, score, best, level, ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, run.Seed, run.Score, run.Best, run.Level, run.Ticks, string(run.Outcome),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}

	return runID, nil
}

// TopRuns retrieves the N highest scoring runs.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY score DESC, id ASC`, limit)
}

// RecentRuns retrieves the N most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY id DESC`, limit)
}

func (s *Store) queryRuns(order string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, seed, score, best, level, ticks, outcome, created_at
		 FROM runs `+order+`
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Seed, &r.Score, &r.Best, &r.Level, &r.Ticks, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics over every run.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}

// parseTime handles the datetime column as either time.Time or text.
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
