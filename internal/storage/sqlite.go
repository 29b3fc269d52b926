// Package storage provides SQLite-based persistence for Tap the Ball scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tapball/internal/registry"
)

// Store manages the SQLite database connection for score persistence.
// It keeps a session history and one persisted high score per game.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents one finished session.
type ScoreEntry struct {
	ID         string // Session UUID
	GameID     string
	Score      int
	Difficulty string
	CreatedAt  time.Time
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
	// SSH sessions share one store; serialize writers on a single connection
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
		CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
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

// HighScore returns the persisted high score for the given game.
// Returns 0 if none was saved yet.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores max(existing, candidate) and returns the stored value.
func (s *Store) SaveHighScore(gameID string, candidate int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO high_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CURRENT_TIMESTAMP`,
		gameID, candidate,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save high score: %w", err)
	}

	var stored int
	if err := tx.QueryRow("SELECT score FROM high_scores WHERE game_id = ?", gameID).Scan(&stored); err != nil {
		return 0, fmt.Errorf("storage: cannot read back high score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit high score: %w", err)
	}
	return stored, nil
}

// SaveScore records a finished session for the given game.
// Returns the generated session ID.
func (s *Store) SaveScore(gameID string, score int, difficulty string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO scores (id, game_id, score, difficulty) VALUES (?, ?, ?, ?)",
		id, gameID, score, difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N session scores for the given game.
// Results are ordered by score descending, then oldest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, difficulty, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Difficulty, &createdAt); err != nil {
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

// ClearScores deletes the session history and the high score for the given game.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int // Persisted high score, which survives history pruning
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	high, err := s.HighScore(gameID)
	if err != nil {
		return nil, err
	}
	stats.HighScore = high

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT s.game_id, COUNT(*), COALESCE(h.score, 0), AVG(s.score), SUM(s.score), MAX(s.created_at)
		 FROM scores s
		 LEFT JOIN high_scores h ON h.game_id = s.game_id
		 GROUP BY s.game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string DATETIME values from the driver.
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

var _ registry.ScoreStore = (*Store)(nil)
