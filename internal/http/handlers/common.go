package handlers

import (
	"net/http"

	"toyshop/internal/auth"
	"toyshop/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Config carries the handler-level settings wired at router construction.
type Config struct {
	PageSize int
	Tokens   auth.TokenService
}

var cfg Config

// Configure must be called once before the router starts serving.
func Configure(c Config) {
	cfg = c
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable. On failure it
// writes a 400 response and stops; callers must return immediately.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "missing body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
