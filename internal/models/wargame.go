package models

import (
	"time"

	"github.com/google/uuid"
)

// GameResult is the outcome of one war round from the player's perspective.
type GameResult int

const (
	ResultLoss GameResult = -1
	ResultTie  GameResult = 0
	ResultWin  GameResult = 1
)

func (r GameResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	case ResultTie:
		return "tie"
	}
	return "unknown"
}

// WarGame records one played round. Rows are append-only.
type WarGame struct {
	ID         uuid.UUID  `json:"id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	Result     GameResult `json:"result"`
	PlayerCard string     `json:"player_card"`
	DealerCard string     `json:"dealer_card"`
	PlayedAt   time.Time  `json:"played_at"`
}

// Tally aggregates a player's lifetime record.
type Tally struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Played returns the total number of recorded rounds.
func (t Tally) Played() int {
	return t.Wins + t.Losses + t.Ties
}
