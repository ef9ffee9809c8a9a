package game

import "github.com/warroom/war-server/internal/models"

// Resolve compares the two cards of a war round and returns the outcome from
// the player's perspective: ResultWin if the player's card outranks the
// dealer's, ResultLoss if it is outranked, ResultTie otherwise. Suits never
// break ties.
func Resolve(player, dealer models.Card) models.GameResult {
	pv, dv := player.Rank.Value(), dealer.Rank.Value()
	switch {
	case pv > dv:
		return models.ResultWin
	case pv < dv:
		return models.ResultLoss
	}
	return models.ResultTie
}
