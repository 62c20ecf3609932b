// Package storage provides SQLite-based persistence for helix runs and
// per-difficulty best records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-helix/internal/helix"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single recorded session.
type RunEntry struct {
	ID           int64
	Difficulty   string
	Score        int
	DurationSecs float64
	Platforms    int
	MaxCombo     int
	Finished     bool
	CreatedAt    time.Time
}

// BestEntry represents the best recorded run for a difficulty tier.
type BestEntry struct {
	Difficulty   string
	Score        int
	DurationSecs float64
	UpdatedAt    time.Time
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
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			platforms INTEGER NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC, duration_secs ASC);

		CREATE TABLE IF NOT EXISTS best_runs (
			difficulty TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveRun records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (difficulty, score, duration_secs, platforms, max_combo, finished)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Difficulty, run.Score, run.DurationSecs, run.Platforms, run.MaxCombo, run.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Best returns the stored best run for a difficulty tier.
// ok is false when no record exists yet.
func (s *Store) Best(difficulty string) (score int, durationSecs float64, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT score, duration_secs FROM best_runs WHERE difficulty = ?",
		difficulty,
	).Scan(&score, &durationSecs)

	if err == sql.ErrNoRows {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	return score, durationSecs, true, nil
}

// UpdateBest replaces the stored best run for a difficulty tier.
// The caller decides whether a run qualifies; this is a plain upsert.
func (s *Store) UpdateBest(difficulty string, score int, durationSecs float64) error {
	_, err := s.db.Exec(
		`INSERT INTO best_runs (difficulty, score, duration_secs, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
		   score = excluded.score,
		   duration_secs = excluded.duration_secs,
		   updated_at = CURRENT_TIMESTAMP`,
		difficulty, score, durationSecs,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update best run: %w", err)
	}
	return nil
}

// Store satisfies the game's best-record interface, so the platform can hand
// it to the game without a storage dependency in the game package.
var _ helix.BestStore = (*Store)(nil)

// TopRuns retrieves the top N runs for the given difficulty,
// ordered by score descending with ties broken by shorter duration.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, duration_secs, platforms, max_combo, finished, created_at
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY score DESC, duration_secs ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads run rows into entries, parsing the created_at column.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &e.DurationSecs, &e.Platforms, &e.MaxCombo, &e.Finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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

// AllBest retrieves the best records for every difficulty that has one.
func (s *Store) AllBest() (map[string]BestEntry, error) {
	rows, err := s.db.Query(
		"SELECT difficulty, score, duration_secs, updated_at FROM best_runs",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	defer rows.Close()

	best := make(map[string]BestEntry)
	for rows.Next() {
		var e BestEntry
		var updatedAt any
		if err := rows.Scan(&e.Difficulty, &e.Score, &e.DurationSecs, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		best[e.Difficulty] = e
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// RunStats contains aggregated statistics for one difficulty tier.
type RunStats struct {
	Difficulty string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	Finished   int
	LastPlayed time.Time
}

// GetRunStats retrieves aggregated statistics for a difficulty tier.
func (s *Store) GetRunStats(difficulty string) (*RunStats, error) {
	stats := &RunStats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(finished), 0)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.Finished)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE difficulty = ? ORDER BY created_at DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all runs and the best record for the given difficulty.
func (s *Store) ClearRuns(difficulty string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_runs WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear best run: %w", err)
	}
	return nil
}
