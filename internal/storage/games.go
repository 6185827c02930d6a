package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameRecord is a finished game stored with enough data to replay it.
type GameRecord struct {
	ID        string // UUID, assigned by SaveGame when empty
	GameID    string
	Seed      int64
	Score     int
	Moves     string // Encoded move log
	MoveCount int
	Cleared   bool
	CreatedAt time.Time
}

// SaveGame stores a finished game and returns its ID.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	if rec.GameID == "" {
		return "", errors.New("storage: game record without game id")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.ID); err != nil {
		return "", fmt.Errorf("storage: invalid game record id %q: %w", rec.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, game_id, seed, score, moves, move_count, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Seed, rec.Score, rec.Moves, rec.MoveCount, rec.Cleared,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return rec.ID, nil
}

// GameByID retrieves a stored game. Returns ErrNotFound if no game has
// that ID.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("storage: invalid game record id %q: %w", id, err)
	}

	row := s.db.QueryRow(
		`SELECT id, game_id, seed, score, moves, move_count, cleared, created_at
		 FROM games
		 WHERE id = ?`,
		id,
	)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return rec, nil
}

// RecentGames retrieves the most recently stored games for gameID, newest
// first. A non-positive limit means 20.
func (s *Store) RecentGames(gameID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, score, moves, move_count, cleared, created_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*GameRecord, error) {
	var rec GameRecord
	var createdAt any
	if err := row.Scan(
		&rec.ID,
		&rec.GameID,
		&rec.Seed,
		&rec.Score,
		&rec.Moves,
		&rec.MoveCount,
		&rec.Cleared,
		&createdAt,
	); err != nil {
		return nil, err
	}
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}
