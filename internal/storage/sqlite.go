// Package storage provides SQLite-based persistence for saved layouts and
// scored runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/arena-planner/internal/arena"
)

// ErrLayoutNotFound is returned when a named layout does not exist.
var ErrLayoutNotFound = errors.New("storage: layout not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a scored run.
type RunEntry struct {
	ID          int64
	GameID      string
	Layout      string
	Score       float64
	ElapsedSecs float64
	Frames      int
	CreatedAt   time.Time
}

// LayoutEntry summarizes a saved layout.
type LayoutEntry struct {
	Name      string
	GameID    string
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS layouts (
			name TEXT PRIMARY KEY,
			game_id TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			layout TEXT NOT NULL DEFAULT '',
			score REAL NOT NULL,
			elapsed_secs REAL NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
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

// SaveLayout stores a layout under its name, replacing any previous version.
// The body is the layout's JSON wire shape.
func (s *Store) SaveLayout(l *arena.Layout) error {
	if l.Name == "" {
		return fmt.Errorf("storage: layout has no name")
	}

	body, err := l.EncodeJSON()
	if err != nil {
		return fmt.Errorf("storage: cannot encode layout: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO layouts (name, game_id, body, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   game_id = excluded.game_id,
		   body = excluded.body,
		   updated_at = CURRENT_TIMESTAMP`,
		l.Name, l.GameID, string(body),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save layout: %w", err)
	}
	return nil
}

// LoadLayout retrieves a layout by name.
// Returns ErrLayoutNotFound if no layout has that name.
func (s *Store) LoadLayout(name string) (arena.Layout, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM layouts WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return arena.Layout{}, ErrLayoutNotFound
	}
	if err != nil {
		return arena.Layout{}, fmt.Errorf("storage: cannot query layout: %w", err)
	}

	l, err := arena.ParseJSON([]byte(body))
	if err != nil {
		return arena.Layout{}, fmt.Errorf("storage: cannot decode layout %s: %w", name, err)
	}
	l.Name = name
	return l, nil
}

// ListLayouts returns all saved layouts ordered by name.
func (s *Store) ListLayouts() ([]LayoutEntry, error) {
	rows, err := s.db.Query("SELECT name, game_id, updated_at FROM layouts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layouts: %w", err)
	}
	defer rows.Close()

	var entries []LayoutEntry
	for rows.Next() {
		var e LayoutEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.GameID, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteLayout removes a saved layout. Deleting a missing layout is not an error.
func (s *Store) DeleteLayout(name string) error {
	if _, err := s.db.Exec("DELETE FROM layouts WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete layout: %w", err)
	}
	return nil
}

// SaveRun records a scored run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, layout, score, elapsed_secs, frames) VALUES (?, ?, ?, ?, ?)",
		run.GameID, run.Layout, run.Score, run.ElapsedSecs, run.Frames,
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

// TopRuns retrieves the top N runs for the given game.
// Results are ordered by score descending, then by shorter elapsed time.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, layout, score, elapsed_secs, frames, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Layout, &e.Score, &e.ElapsedSecs, &e.Frames, &createdAt); err != nil {
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

// BestScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) BestScore(gameID string) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return score.Float64, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles datetimes returned either as time.Time or as text.
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
