package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/warroom/war-server/internal/cache"
	"github.com/warroom/war-server/internal/game"
	"github.com/warroom/war-server/internal/models"
)

// PlayHandler plays one war round for the signed-in player: deal a card each,
// compare, record the outcome, then back to the profile.
func (s *Server) PlayHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := s.currentUser(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := s.playRound(r.Context(), user); err != nil {
		s.log.WithError(err).Error("play round")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// playRound deals, resolves and records a single round.
func (s *Server) playRound(ctx context.Context, user *models.User) (*models.WarGame, error) {
	playerCard, dealerCard := s.dealer.Deal()

	round := &models.WarGame{
		PlayerID:   user.ID,
		Result:     game.Resolve(playerCard, dealerCard),
		PlayerCard: playerCard.Label(),
		DealerCard: dealerCard.Label(),
	}
	if err := s.store.RecordGame(ctx, round); err != nil {
		return nil, err
	}

	if s.feed != nil {
		rec := cache.RoundRecord{
			PlayerID:   round.PlayerID,
			PlayerCard: round.PlayerCard,
			DealerCard: round.DealerCard,
			Result:     int(round.Result),
			PlayedAt:   round.PlayedAt.Unix(),
		}
		if err := s.feed.Push(ctx, rec); err != nil {
			// the postgres row is the record of truth; feed loss is tolerable
			s.log.WithError(err).Warn("push round to feed")
		}
	}

	s.log.WithFields(logrus.Fields{
		"player": user.Username,
		"result": round.Result.String(),
	}).Info("war round played")

	return round, nil
}
