// Package users stores User records and enforces email uniqueness.
package users

import (
	"context"

	"github.com/dmitrijs2005/authapi/internal/server/models"
)

// Repository is the credential store used by the auth service.
//
// GetUserByEmail returns common.ErrorNotFound on a miss. Create returns
// common.ErrorConstraintViolation when the email is already taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
