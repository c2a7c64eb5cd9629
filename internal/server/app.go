// Package server wires the auth API together: storage, schema init, the
// user service and the HTTP server, plus signal handling and shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authapi/internal/cryptox"
	"github.com/dmitrijs2005/authapi/internal/logging"
	"github.com/dmitrijs2005/authapi/internal/server/config"
	"github.com/dmitrijs2005/authapi/internal/server/httpserver"
	"github.com/dmitrijs2005/authapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authapi/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     repomanager.RepositoryManager
	userService *services.UserService
}

// NewApp opens PostgreSQL, applies pending migrations and builds the user
// service. Any failure here is fatal for the process.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, logger, m)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, m repomanager.RepositoryManager) (*App, error) {
	gin.SetMode(c.GinMode)

	if err := m.RunMigrations(ctx); err != nil {
		return nil, err
	}
	logger.Info(ctx, "Schema is up to date")

	us := services.NewUserService(m.Users(), cryptox.NewBcryptHasher(c.BcryptCost))

	return &App{config: c, logger: logger, manager: m, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.manager, httpserver.Options{
		AllowedOrigins:  app.config.AllowedOrigins(),
		ShutdownTimeout: app.config.ShutdownTimeout,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is canceled or a termination signal arrives, then
// closes storage. It returns the server error, if any.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")

	return runErr
}
