package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/warroom/war-server/internal/auth"
	"github.com/warroom/war-server/internal/cache"
	"github.com/warroom/war-server/internal/game"
	"github.com/warroom/war-server/internal/middleware"
	"github.com/warroom/war-server/internal/models"
)

// Store is the persistence surface the views need. *database.Store implements
// it; tests substitute an in-memory version.
type Store interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CountCards(ctx context.Context) (int, error)

	CreateUser(ctx context.Context, u *models.User, password string) error
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	RecordGame(ctx context.Context, g *models.WarGame) error
	GamesByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.WarGame, error)
	TallyByPlayer(ctx context.Context, playerID uuid.UUID) (models.Tally, error)
}

// Server holds the dependencies shared by all views.
type Server struct {
	store  Store
	feed   *cache.Feed // nil when redis is unavailable
	dealer *game.Dealer
	log    *logrus.Logger
}

func NewServer(store Store, feed *cache.Feed, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		store:  store,
		feed:   feed,
		dealer: game.NewDealer(),
		log:    logger,
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.HomeHandler)
	mux.HandleFunc("/register", s.RegisterHandler)
	mux.HandleFunc("/login", s.LoginHandler)
	mux.HandleFunc("/logout", s.LogoutHandler)
	mux.HandleFunc("/profile", s.ProfileHandler)
	mux.HandleFunc("/faq", s.FAQHandler)
	mux.HandleFunc("/filters", s.FiltersHandler)
	mux.HandleFunc("/play", s.PlayHandler)
	mux.HandleFunc("/play/ws", s.PlayWSHandler)

	return middleware.Logging(s.log)(mux)
}

// currentUser resolves the session cookie to a user row.
func (s *Server) currentUser(r *http.Request) (*models.User, error) {
	userID, err := auth.UserIDFromRequest(r)
	if err != nil {
		return nil, err
	}
	return s.store.UserByID(r.Context(), userID)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.WithError(err).Errorf("render template %s", name)
	}
}
