// Package cryptox implements password hashing for stored credentials.
package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authapi/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor Flask-Bcrypt and most bcrypt
// deployments use out of the box.
const DefaultCost = 12

// BcryptHasher produces self-describing bcrypt hashes: the "$2a$<cost>$"
// prefix and the 22-character salt travel inside the hash string, so
// verification needs nothing but the stored value.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

// Hash returns a freshly salted bcrypt hash of password. Passwords longer
// than 72 bytes yield common.ErrorPasswordTooLong.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.ErrorPasswordTooLong
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Verify returns nil only when password matches hash. A malformed hash is
// reported as an error, never as a match.
func (h *BcryptHasher) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
