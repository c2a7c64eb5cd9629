package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authapi/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs every repository with process memory.
// Used by tests and local runs without a database.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

// UserStore exposes the concrete in-memory repository for inspection.
func (m *InMemoryRepositoryManager) UserStore() *users.InMemoryRepository {
	return m.users
}

func (m *InMemoryRepositoryManager) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
