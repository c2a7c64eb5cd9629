package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash that embeds
// its own salt and cost; the plaintext password is never stored.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
