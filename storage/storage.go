// Package storage records played matches in SQLite: one row per match and
// one per move. It stores nothing about computed graphs or strategy
// tables; those are rebuilt from the pile size on demand.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store handles database operations for match logging.
type Store struct {
	db *sql.DB
}

// Match is one recorded game.
type Match struct {
	ID              string
	N               int
	StartedAt       time.Time
	EndedAt         *time.Time
	FirstMoverLoses bool
	Winner          string // "human", "computer", or empty while running
}

// Move is one recorded move of a match.
type Move struct {
	ID       int64
	MatchID  string
	Seq      int
	Mover    string
	Position string // rendered base values, e.g. "1 1 3"
}

// Open opens (or creates) the database at path and migrates the schema.
// ":memory:" gives an ephemeral store for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and
	// serializes writers.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		n INTEGER NOT NULL,
		started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		ended_at DATETIME,
		first_mover_loses INTEGER NOT NULL DEFAULT 0,
		winner TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		mover TEXT NOT NULL,
		position TEXT NOT NULL,
		FOREIGN KEY (match_id) REFERENCES matches(id)
	);

	CREATE INDEX IF NOT EXISTS idx_moves_match ON moves(match_id, seq);
	CREATE INDEX IF NOT EXISTS idx_matches_n ON matches(n);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying connection for custom queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// CreateMatch records the start of a match and returns its id.
func (s *Store) CreateMatch(n int, firstMoverLoses bool) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO matches (id, n, started_at, first_mover_loses) VALUES (?, ?, ?, ?)`,
		id, n, time.Now().UTC(), firstMoverLoses,
	)
	if err != nil {
		return "", fmt.Errorf("create match: %w", err)
	}
	return id, nil
}

// LogMove appends one move to a match.
func (s *Store) LogMove(matchID string, seq int, mover, position string) error {
	_, err := s.db.Exec(
		`INSERT INTO moves (match_id, seq, mover, position) VALUES (?, ?, ?, ?)`,
		matchID, seq, mover, position,
	)
	if err != nil {
		return fmt.Errorf("log move: %w", err)
	}
	return nil
}

// FinishMatch marks a match as ended with the given winner.
func (s *Store) FinishMatch(id, winner string) error {
	_, err := s.db.Exec(
		`UPDATE matches SET ended_at = ?, winner = ? WHERE id = ?`,
		time.Now().UTC(), winner, id,
	)
	if err != nil {
		return fmt.Errorf("finish match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by id.
func (s *Store) GetMatch(id string) (*Match, error) {
	row := s.db.QueryRow(
		`SELECT id, n, started_at, ended_at, first_mover_loses, winner
		 FROM matches WHERE id = ?`, id,
	)
	return scanMatch(row)
}

// ListMatches returns the most recently started matches, newest first.
func (s *Store) ListMatches(limit int) ([]*Match, error) {
	rows, err := s.db.Query(
		`SELECT id, n, started_at, ended_at, first_mover_loses, winner
		 FROM matches ORDER BY started_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// MovesFor returns a match's moves in play order.
func (s *Store) MovesFor(matchID string) ([]*Move, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, seq, mover, position
		 FROM moves WHERE match_id = ? ORDER BY seq`, matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("moves for %s: %w", matchID, err)
	}
	defer rows.Close()

	var moves []*Move
	for rows.Next() {
		var m Move
		if err := rows.Scan(&m.ID, &m.MatchID, &m.Seq, &m.Mover, &m.Position); err != nil {
			return nil, err
		}
		moves = append(moves, &m)
	}
	return moves, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (*Match, error) {
	var m Match
	var endedAt sql.NullTime
	err := row.Scan(&m.ID, &m.N, &m.StartedAt, &endedAt, &m.FirstMoverLoses, &m.Winner)
	if err != nil {
		return nil, err
	}
	if endedAt.Valid {
		m.EndedAt = &endedAt.Time
	}
	return &m, nil
}
