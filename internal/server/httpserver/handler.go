package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authapi/internal/common"
	"github.com/gin-gonic/gin"
)

const homeText = "Auth API running 🚀"

// credentialsRequest is the body of /register and /login. Absent keys and
// JSON null both decode to "".
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account from the posted credentials.
func (s *HTTPServer) Register(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.requestLogger(c)

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn(ctx, "bad register body", "error", err)
		resultBadBody.write(c)
		return
	}

	user, err := s.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		s.logFailure(c, "register", err)
		resultFromError(err).write(c)
		return
	}

	log.Info(ctx, "Registered", "user_id", user.ID)
	resultRegistered.write(c)
}

// Login checks the posted credentials. Nothing is issued on success.
func (s *HTTPServer) Login(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.requestLogger(c)

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn(ctx, "bad login body", "error", err)
		resultBadBody.write(c)
		return
	}

	if err := s.auth.Login(ctx, req.Email, req.Password); err != nil {
		s.logFailure(c, "login", err)
		resultFromError(err).write(c)
		return
	}

	resultLoggedIn.write(c)
}

// Home is the liveness probe.
func (s *HTTPServer) Home(c *gin.Context) {
	c.String(http.StatusOK, homeText)
}

// Health additionally checks that storage answers.
func (s *HTTPServer) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		s.requestLogger(c).Error(ctx, "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logFailure keeps expected rejections at info and reports everything else
// with the underlying error, which is never sent to the client.
func (s *HTTPServer) logFailure(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	log := s.requestLogger(c)

	switch {
	case errors.Is(err, common.ErrorMissingFields),
		errors.Is(err, common.ErrorUserExists),
		errors.Is(err, common.ErrorPasswordTooLong),
		errors.Is(err, common.ErrorInvalidCredentials):
		log.Info(ctx, op+" rejected", "reason", err.Error())
	default:
		log.Error(ctx, op+" failed", "error", err)
	}
}
