// Package httpserver exposes the auth service over HTTP/JSON using gin.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authapi/internal/logging"
	"github.com/dmitrijs2005/authapi/internal/server/models"
	"github.com/gin-gonic/gin"
)

// AuthService is the part of services.UserService the handlers call.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) error
}

// Pinger reports storage liveness for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the transport settings taken from server config.
type Options struct {
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	auth            AuthService
	pinger          Pinger
	router          *gin.Engine
	shutdownTimeout time.Duration
}

func NewHTTPServer(address string, l logging.Logger, auth AuthService, pinger Pinger, opts Options) *HTTPServer {
	s := &HTTPServer{
		address:         address,
		logger:          l.With("module", "http_server"),
		auth:            auth,
		pinger:          pinger,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}
	s.router = s.newRouter(opts.AllowedOrigins)
	return s
}

// Handler returns the configured router.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is canceled,
// then drains in-flight requests for at most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveDone := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
		case <-serveDone:
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "graceful shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	close(serveDone)
	<-stopped

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
