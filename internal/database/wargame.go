package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/warroom/war-server/internal/models"
)

// RecordGame persists one played round, assigning an ID when the caller did
// not.
func (s *Store) RecordGame(ctx context.Context, g *models.WarGame) error {
	if g.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("generate game id: %w", err)
		}
		g.ID = id
	}
	if g.PlayedAt.IsZero() {
		g.PlayedAt = time.Now()
	}

	q := `INSERT INTO war_games (id, player_id, result, player_card, dealer_card, played_at)
	      VALUES ($1, $2, $3, $4, $5, $6)`
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q, g.ID, g.PlayerID, int(g.Result), g.PlayerCard, g.DealerCard, g.PlayedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("insert war game: %w", err)
	}
	return nil
}

// GamesByPlayer returns the player's rounds, most recent first.
func (s *Store) GamesByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.WarGame, error) {
	q := `SELECT id, player_id, result, player_card, dealer_card, played_at
	      FROM war_games WHERE player_id=$1 ORDER BY played_at DESC`
	rows, err := s.pool.Query(ctx, q, playerID)
	if err != nil {
		return nil, fmt.Errorf("list war games: %w", err)
	}
	defer rows.Close()

	var games []models.WarGame
	for rows.Next() {
		var g models.WarGame
		var result int
		if err := rows.Scan(&g.ID, &g.PlayerID, &result, &g.PlayerCard, &g.DealerCard, &g.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan war game: %w", err)
		}
		g.Result = models.GameResult(result)
		games = append(games, g)
	}
	return games, rows.Err()
}

// TallyByPlayer aggregates the player's lifetime win/loss/tie counts.
func (s *Store) TallyByPlayer(ctx context.Context, playerID uuid.UUID) (models.Tally, error) {
	var t models.Tally
	q := `SELECT
	        COUNT(*) FILTER (WHERE result = 1),
	        COUNT(*) FILTER (WHERE result = -1),
	        COUNT(*) FILTER (WHERE result = 0)
	      FROM war_games WHERE player_id=$1`
	if err := s.pool.QueryRow(ctx, q, playerID).Scan(&t.Wins, &t.Losses, &t.Ties); err != nil {
		return t, fmt.Errorf("tally war games: %w", err)
	}
	return t, nil
}
