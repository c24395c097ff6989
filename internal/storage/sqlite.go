// Package storage provides SQLite-based persistence for puzzle answers.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for answer history.
type Store struct {
	db *sql.DB
}

// AnswerEntry represents one stored answer for one part of a puzzle.
type AnswerEntry struct {
	ID        int64
	RunID     string // groups the parts solved by one invocation
	PuzzleID  string
	Part      int
	Answer    string
	Duration  time.Duration
	CreatedAt time.Time
}

// PuzzleStats contains aggregated statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID     string
	Runs         int
	Answers      int
	Fastest      time.Duration
	LastSolvedAt time.Time
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
		CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			puzzle_id TEXT NOT NULL,
			part INTEGER NOT NULL,
			answer TEXT NOT NULL,
			duration_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_answers_puzzle_id ON answers(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_answers_run_id ON answers(run_id);
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

// SaveAnswer records an answer and returns the ID of the inserted record.
func (s *Store) SaveAnswer(e AnswerEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO answers (run_id, puzzle_id, part, answer, duration_us)
		 VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.PuzzleID, e.Part, e.Answer, e.Duration.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save answer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// History retrieves the most recent answers for the given puzzle, newest first.
func (s *Store) History(puzzleID string, limit int) ([]AnswerEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, puzzle_id, part, answer, duration_us, created_at
		 FROM answers
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query answers: %w", err)
	}
	defer rows.Close()

	var entries []AnswerEntry
	for rows.Next() {
		e, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Latest returns the newest answer for one part of a puzzle, or nil if none exists.
func (s *Store) Latest(puzzleID string, part int) (*AnswerEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, puzzle_id, part, answer, duration_us, created_at
		 FROM answers
		 WHERE puzzle_id = ? AND part = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		puzzleID, part,
	)

	e, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ClearAnswers deletes all answers for the given puzzle.
func (s *Store) ClearAnswers(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM answers WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear answers: %w", err)
	}
	return nil
}

// Stats retrieves statistics for every puzzle that has stored answers.
func (s *Store) Stats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(DISTINCT run_id), COUNT(*), MIN(duration_us), MAX(created_at)
		 FROM answers
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var fastestUs int64
		var lastSolved any
		if err := rows.Scan(&ps.PuzzleID, &ps.Runs, &ps.Answers, &fastestUs, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.Fastest = time.Duration(fastestUs) * time.Microsecond
		ps.LastSolvedAt = parseTime(lastSolved)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row scanner) (AnswerEntry, error) {
	var e AnswerEntry
	var durationUs int64
	var createdAt any
	err := row.Scan(&e.ID, &e.RunID, &e.PuzzleID, &e.Part, &e.Answer, &durationUs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Duration = time.Duration(durationUs) * time.Microsecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
