package handlers

import (
	"errors"
	"net/http"

	"github.com/warroom/war-server/internal/auth"
	"github.com/warroom/war-server/internal/database"
	"github.com/warroom/war-server/internal/models"
)

// RegisterHandler renders the registration form and, on POST, validates it,
// creates the player and signs them in before redirecting to the profile.
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, http.StatusOK, "register.html", &RegisterForm{})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	form := registerFormFromRequest(r)
	if !form.Validate() {
		s.render(w, http.StatusOK, "register.html", form)
		return
	}

	ctx := r.Context()
	if _, err := ValidateNewUsername(ctx, s.store, form.Username); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			form.Errors["username"] = "A user with that username already exists."
			s.render(w, http.StatusOK, "register.html", form)
			return
		}
		s.log.WithError(err).Error("check username")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username: form.Username,
		Email:    form.Email,
	}
	if err := s.store.CreateUser(ctx, &user, form.Password1); err != nil {
		// the unique key can still fire between check and insert
		if errors.Is(err, database.ErrUsernameTaken) {
			form.Errors["username"] = "A user with that username already exists."
			s.render(w, http.StatusOK, "register.html", form)
			return
		}
		s.log.WithError(err).Error("create user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.log.WithField("username", user.Username).Info("registered new player")
	s.signIn(w, r, &user)
}

// LoginHandler renders the login form and, on POST, authenticates and
// redirects to the profile.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, http.StatusOK, "login.html", &LoginForm{})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	form := &LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	user, err := s.store.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrBadCredentials) {
			form.Error = "Please enter a correct username and password."
			s.render(w, http.StatusOK, "login.html", form)
			return
		}
		s.log.WithError(err).Error("authenticate")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.signIn(w, r, user)
}

// LogoutHandler clears the session and returns to the home page.
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// signIn issues a session token, sets the cookie and redirects to the
// profile page.
func (s *Server) signIn(w http.ResponseWriter, r *http.Request, user *models.User) {
	token, err := auth.NewToken(user.ID)
	if err != nil {
		s.log.WithError(err).Error("create session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
