// Package storage provides SQLite-based persistence for finished maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents a single finished maze run.
type Run struct {
	ID        int64
	RunID     string // UUID, generated by SaveRun when empty
	GameID    string
	Player    string
	Width     int
	Height    int
	Elapsed   time.Duration
	Steps     int
	Bumps     int
	CreatedAt time.Time
}

// Size is a maze size that has recorded runs.
type Size struct {
	Width  int
	Height int
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			bumps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_size ON runs(width, height);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(width, height, elapsed_ms ASC);
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

const runColumns = `id, run_id, game_id, player, width, height, elapsed_ms, steps, bumps, created_at`

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, player, width, height, elapsed_ms, steps, bumps)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.GameID, run.Player, run.Width, run.Height,
		run.Elapsed.Milliseconds(), run.Steps, run.Bumps,
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

// BestTimes retrieves the fastest N runs for a maze size.
// Results are ordered by elapsed time ascending.
func (s *Store) BestTimes(width, height, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE width = ? AND height = ?
		 ORDER BY elapsed_ms ASC, id ASC
		 LIMIT ?`,
		width, height, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs of any size.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns retrieves all runs for a maze size (no limit), fastest first.
func (s *Store) AllRuns(width, height int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE width = ? AND height = ?
		 ORDER BY elapsed_ms ASC, id ASC`,
		width, height,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestTime returns the fastest time for a maze size.
// ok is false if no runs exist.
func (s *Store) BestTime(width, height int) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(elapsed_ms) FROM runs WHERE width = ? AND height = ?",
		width, height,
	).Scan(&ms)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// PlayedSizes returns every maze size with at least one run, smallest first.
func (s *Store) PlayedSizes() ([]Size, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT width, height FROM runs ORDER BY width * height ASC, width ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sizes: %w", err)
	}
	defer rows.Close()

	var sizes []Size
	for rows.Next() {
		var sz Size
		if err := rows.Scan(&sz.Width, &sz.Height); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sizes = append(sizes, sz)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sizes, nil
}

// ClearRuns deletes all runs for a maze size.
// A zero width and height clears every run.
func (s *Store) ClearRuns(width, height int) error {
	var err error
	if width == 0 && height == 0 {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE width = ? AND height = ?", width, height)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics for a maze size.
type RunStats struct {
	Width      int
	Height     int
	Runs       int
	Best       time.Duration
	Average    time.Duration
	TotalSteps int64
	TotalBumps int64
	LastPlayed time.Time
}

// GetRunStats retrieves aggregated statistics for a maze size.
func (s *Store) GetRunStats(width, height int) (*RunStats, error) {
	stats := &RunStats{Width: width, Height: height}

	var bestMs int64
	var avgMs float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(elapsed_ms), 0), COALESCE(AVG(elapsed_ms), 0),
		        COALESCE(SUM(steps), 0), COALESCE(SUM(bumps), 0)
		 FROM runs WHERE width = ? AND height = ?`,
		width, height,
	).Scan(&stats.Runs, &bestMs, &avgMs, &stats.TotalSteps, &stats.TotalBumps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.Best = time.Duration(bestMs) * time.Millisecond
	stats.Average = time.Duration(avgMs * float64(time.Millisecond))

	if stats.Runs == 0 {
		return stats, nil
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE width = ? AND height = ? ORDER BY id DESC LIMIT 1`,
		width, height,
	).Scan(&lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// scanRuns reads every row of a runs query.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Player, &r.Width, &r.Height,
			&elapsedMs, &r.Steps, &r.Bumps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
