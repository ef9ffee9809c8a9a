package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/warroom/war-server/internal/database"
)

// RegisterForm carries the registration fields plus any validation messages
// for re-rendering.
type RegisterForm struct {
	Username  string
	Email     string
	Password1 string
	Password2 string

	Errors map[string]string
}

func registerFormFromRequest(r *http.Request) *RegisterForm {
	return &RegisterForm{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password1: r.FormValue("password1"),
		Password2: r.FormValue("password2"),
		Errors:    map[string]string{},
	}
}

// Validate runs the static field checks. Duplicate-username detection is the
// store's job; see ValidateNewUsername.
func (f *RegisterForm) Validate() bool {
	if f.Username == "" {
		f.Errors["username"] = "Username is required."
	}
	if f.Email == "" {
		f.Errors["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		f.Errors["email"] = "Enter a valid email address."
	}
	if f.Password1 == "" {
		f.Errors["password1"] = "Password is required."
	} else if f.Password1 != f.Password2 {
		f.Errors["password2"] = "The two password fields didn't match."
	}
	return len(f.Errors) == 0
}

// ValidateNewUsername returns the candidate unchanged when no account holds
// it, or database.ErrUsernameTaken when one does. Matching is exact and
// case-sensitive.
func ValidateNewUsername(ctx context.Context, store Store, candidate string) (string, error) {
	_, err := store.UserByUsername(ctx, candidate)
	if err == nil {
		return "", database.ErrUsernameTaken
	}
	if errors.Is(err, database.ErrUserNotFound) {
		return candidate, nil
	}
	return "", err
}

// LoginForm carries the login fields plus a single failure message.
type LoginForm struct {
	Username string
	Password string

	Error string
}
