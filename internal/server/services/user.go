// Package services contains server-side business logic. UserService
// implements registration and credential verification on top of the users
// repository and a password hasher.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/authapi/internal/common"
	"github.com/dmitrijs2005/authapi/internal/server/models"
	"github.com/dmitrijs2005/authapi/internal/server/repositories/users"
)

// PasswordHasher turns passwords into self-salted one-way hashes and checks
// candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// UserService is stateless between calls: every request reads or writes the
// repository directly.
type UserService struct {
	users  users.Repository
	hasher PasswordHasher

	dummyMu   sync.Mutex
	dummyHash string
}

// fallbackDummyHash is a well-formed bcrypt hash used when the hasher cannot
// produce one, so unknown-email logins still pay for a full comparison.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const dummyPassword = "dummy password for absent users"


// NewUserService constructs a UserService.
func NewUserService(repo users.Repository, hasher PasswordHasher) *UserService {
	return &UserService{users: repo, hasher: hasher}
}

// Register creates a user for email with a hash of password.
//
// Errors: common.ErrorMissingFields if either value is empty,
// common.ErrorUserExists if the email is taken (including a lost race
// caught by the storage constraint), common.ErrorPasswordTooLong if the
// hasher rejects the password, common.ErrorInternal otherwise.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.ErrorMissingFields
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrorUserExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("%w: lookup user: %v", common.ErrorInternal, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorPasswordTooLong) {
			return nil, common.ErrorPasswordTooLong
		}
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}

	user, err := s.users.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConstraintViolation) {
			return nil, common.ErrorUserExists
		}
		return nil, fmt.Errorf("%w: create user: %v", common.ErrorInternal, err)
	}

	return user, nil
}

// Login checks password against the hash stored for email. Unknown email and
// wrong password both return common.ErrorInvalidCredentials. Nothing is
// written and no token is issued.
func (s *UserService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return common.ErrorInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same bcrypt work as a real check so response time
			// does not reveal whether the email exists
			_ = s.hasher.Verify(s.getDummyHash(), password)
			return common.ErrorInvalidCredentials
		}
		return fmt.Errorf("%w: lookup user: %v", common.ErrorInternal, err)
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return common.ErrorInvalidCredentials
	}

	return nil
}

// getDummyHash hashes dummyPassword with the configured hasher once. A failed
// attempt is not cached; the call falls back to fallbackDummyHash.
func (s *UserService) getDummyHash() string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash
	}
	h, err := s.hasher.Hash(dummyPassword)
	if err != nil || h == "" {
		return fallbackDummyHash
	}
	s.dummyHash = h
	return h
}
