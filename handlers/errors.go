// errors.go - Maps service errors to HTTP status codes

package handlers

import (
	"errors"
	"io"
	"net/http"

	"go-review-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps the domain error taxonomy to a status code. Validation failures
// are reported as 500, which is what the existing client has always received.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	default: // ErrValidation, ErrStore and anything unexpected
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into dst. An empty body leaves dst untouched.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return false
	}
	return true
}

// logFailure records server-side failures; client errors are left to the request logger.
func logFailure(log *zap.Logger, c *gin.Context, status int, err error) {
	_ = c.Error(err) // Attach to the context for the request logger
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
}
