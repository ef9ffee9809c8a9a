package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered player. The password is stored only as an encoded
// Argon2id hash; the plaintext never reaches this struct.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
