package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warroom/war-server/internal/game"
	"github.com/warroom/war-server/internal/models"
)

// SeedDeck inserts the 52 standard cards. Safe to call on every startup: the
// (suit, rank) unique key turns repeat inserts into no-ops.
func (s *Store) SeedDeck(ctx context.Context) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `INSERT INTO cards (suit, rank) VALUES ($1, $2) ON CONFLICT (suit, rank) DO NOTHING`
		for _, c := range game.StandardDeck() {
			if _, err := tx.Exec(ctx, q, int(c.Suit), string(c.Rank)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed deck: %w", err)
	}
	return nil
}

// ListCards returns all cards in seed order.
func (s *Store) ListCards(ctx context.Context) ([]models.Card, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, suit, rank FROM cards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		var c models.Card
		var suit int
		var rank string
		if err := rows.Scan(&c.ID, &suit, &rank); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		c.Suit = models.Suit(suit)
		c.Rank = models.Rank(rank)
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// CountCards returns the number of card rows.
func (s *Store) CountCards(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}
