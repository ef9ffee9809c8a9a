package handlers

import (
	"net/http"

	"github.com/warroom/war-server/internal/cache"
)

// HomeHandler lists the full deck.
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cards, err := s.store.ListCards(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list cards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user, _ := s.currentUser(r)
	s.render(w, http.StatusOK, "home.html", map[string]any{
		"Cards": cards,
		"User":  user,
	})
}

// FAQHandler is a static informational page.
func (s *Server) FAQHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "faq.html", nil)
}

// FiltersHandler shows the deck again along with its count.
func (s *Server) FiltersHandler(w http.ResponseWriter, r *http.Request) {
	cards, err := s.store.ListCards(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list cards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	count, err := s.store.CountCards(r.Context())
	if err != nil {
		s.log.WithError(err).Error("count cards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.render(w, http.StatusOK, "filters.html", map[string]any{
		"Cards": cards,
		"Count": count,
	})
}

// ProfileHandler shows the signed-in player's game history and record. It
// redirects unauthenticated visitors to the login page.
func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	games, err := s.store.GamesByPlayer(r.Context(), user.ID)
	if err != nil {
		s.log.WithError(err).Error("list games")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	tally, err := s.store.TallyByPlayer(r.Context(), user.ID)
	if err != nil {
		s.log.WithError(err).Error("tally games")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var recent []cache.RoundRecord
	if s.feed != nil {
		recent, err = s.feed.Recent(r.Context(), user.ID, 10)
		if err != nil {
			// history from postgres still renders; the feed is best-effort
			s.log.WithError(err).Warn("read recent feed")
		}
	}

	s.render(w, http.StatusOK, "profile.html", map[string]any{
		"User":   user,
		"Games":  games,
		"Tally":  tally,
		"Recent": recent,
	})
}
