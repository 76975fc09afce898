package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"blackjack/internal/game"
)

// SQLiteStore persists the current round per key so a restarted bot can
// continue it. Put overwrites, finished rounds are not kept.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (game.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT state FROM sessions WHERE key = ?
	`, key).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return game.State{}, ErrNotFound
	}
	if err != nil {
		return game.State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var state game.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return game.State{}, fmt.Errorf("failed to decode session %q: %w", key, err)
	}
	return state, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, state game.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (key, state) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			state = excluded.state, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))

	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
