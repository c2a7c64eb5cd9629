package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authapi/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestPostgresRepositoryManager_SatisfiesInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var m RepositoryManager = newPostgresRepositoryManager(db)
	require.NotNil(t, m.Users())

	var _ users.Repository = m.Users()
	_, ok := m.Users().(*users.PostgresRepository)
	assert.True(t, ok)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, got *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if got != db {
			return errors.New("unexpected db")
		}
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	})

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.RunMigrations(context.Background()))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	calls := 0
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		calls++
		return nil
	})

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.RunMigrations(context.Background()))
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m := newPostgresRepositoryManager(db)
	err := m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestPingAndClose(t *testing.T) {
	db, mock := newDB(t)

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("gone"))
	mock.ExpectClose()

	m := newPostgresRepositoryManager(db)
	require.NoError(t, m.Ping(context.Background()))
	require.Error(t, m.Ping(context.Background()))
	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInMemoryRepositoryManager(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	ctx := context.Background()

	var _ RepositoryManager = m
	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.Ping(ctx))
	assert.Same(t, m.UserStore(), m.Users())
	require.NoError(t, m.Close())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, m.Ping(canceled))
}
