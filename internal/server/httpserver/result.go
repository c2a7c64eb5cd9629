package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authapi/internal/common"
	"github.com/gin-gonic/gin"
)

// Result is what a handler writes: a status code and a JSON body.
type Result struct {
	Status int
	Body   gin.H
}

const (
	msgUserCreated    = "User created successfully"
	msgLoginOK        = "Login successful"
	msgMissingFields  = "Missing fields"
	msgUserExists     = "User already exists"
	msgInvalidCreds   = "Invalid credentials"
	msgPasswordTooLng = "Password too long"
	msgInvalidBody    = "Invalid request body"
	msgInternal       = "Internal server error"
)

var (
	resultRegistered = Result{Status: http.StatusCreated, Body: gin.H{"message": msgUserCreated}}
	resultLoggedIn   = Result{Status: http.StatusOK, Body: gin.H{"message": msgLoginOK}}
	resultBadBody    = Result{Status: http.StatusBadRequest, Body: gin.H{"error": msgInvalidBody}}
)

func errorResult(status int, msg string) Result {
	return Result{Status: status, Body: gin.H{"error": msg}}
}

// resultFromError maps service errors to responses. Anything unrecognized
// becomes a generic 500 so storage details never reach the client.
func resultFromError(err error) Result {
	switch {
	case errors.Is(err, common.ErrorMissingFields):
		return errorResult(http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, common.ErrorUserExists), errors.Is(err, common.ErrorConstraintViolation):
		return errorResult(http.StatusBadRequest, msgUserExists)
	case errors.Is(err, common.ErrorPasswordTooLong):
		return errorResult(http.StatusBadRequest, msgPasswordTooLng)
	case errors.Is(err, common.ErrorInvalidCredentials):
		return errorResult(http.StatusUnauthorized, msgInvalidCreds)
	default:
		return errorResult(http.StatusInternalServerError, msgInternal)
	}
}

func (r Result) write(c *gin.Context) {
	c.JSON(r.Status, r.Body)
}
