// Package repomanager owns the storage connection: it runs schema
// migrations and hands out repositories bound to that connection.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/authapi/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations brings the schema up to date. Safe to call on every start.
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Ping(ctx context.Context) error
	Close() error
}
