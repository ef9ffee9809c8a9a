package database

import (
	"context"
	"fmt"
)

// schema creates the three tables on first run. The (suit, rank) unique key
// on cards is what makes deck seeding idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cards (
	id BIGSERIAL PRIMARY KEY,
	suit SMALLINT NOT NULL,
	rank TEXT NOT NULL,
	UNIQUE (suit, rank)
);

CREATE TABLE IF NOT EXISTS war_games (
	id UUID PRIMARY KEY,
	player_id UUID NOT NULL REFERENCES users(id),
	result SMALLINT NOT NULL,
	player_card TEXT NOT NULL,
	dealer_card TEXT NOT NULL,
	played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS war_games_player_idx ON war_games (player_id, played_at DESC);
`

// EnsureSchema creates any missing tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
