package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/warroom/war-server/internal/auth"
	"github.com/warroom/war-server/internal/models"
)

var (
	// ErrUsernameTaken is returned when the username unique key rejects an
	// insert.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned on lookups of unknown users.
	ErrUserNotFound = errors.New("user not found")

	// ErrBadCredentials is returned for unknown usernames and wrong passwords
	// alike, so callers leak nothing about which was wrong.
	ErrBadCredentials = errors.New("invalid credentials")
)

const pgUniqueViolation = "23505"

// CreateUser hashes the password and inserts the user, assigning an ID when
// the caller did not.
func (s *Store) CreateUser(ctx context.Context, u *models.User, password string) error {
	if u.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("generate user id: %w", err)
		}
		u.ID = id
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	q := `INSERT INTO users (id, username, email, password, created_at) VALUES ($1, $2, $3, $4, $5)`
	err = pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q, u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt)
		return execErr
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UserByUsername looks a user up by exact username match.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userBy(ctx, `username=$1`, username)
}

// UserByID looks a user up by ID.
func (s *Store) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userBy(ctx, `id=$1`, id)
}

func (s *Store) userBy(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	q := `SELECT id, username, email, password, created_at FROM users WHERE ` + where
	err := s.pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// Authenticate verifies the username/password pair and returns the user.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.UserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	match, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil || !match {
		return nil, ErrBadCredentials
	}
	return u, nil
}
