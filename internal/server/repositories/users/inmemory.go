package users

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/authapi/internal/common"
	"github.com/dmitrijs2005/authapi/internal/server/models"
)

// MaxEmailLength mirrors users.email VARCHAR(120).
const MaxEmailLength = 120

// InMemoryRepository keeps users in a map keyed by exact email. It follows
// the same error contract as PostgresRepository and is safe for concurrent
// use.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	byMail map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byMail: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Postgres rejects this with SQLSTATE 22001, which is not a constraint
	// violation; report it the same way.
	if n := utf8.RuneCountInString(user.Email); n > MaxEmailLength {
		return nil, fmt.Errorf("db error: email is %d characters, column allows %d", n, MaxEmailLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byMail[user.Email]; ok {
		return nil, common.ErrorConstraintViolation
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.byMail[user.Email] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byMail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// Count returns the number of stored users.
func (r *InMemoryRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byMail)
}
