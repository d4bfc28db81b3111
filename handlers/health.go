// health.go - Root endpoint used as a liveness check

package handlers

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Root answers liveness checks.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Get message") // Fixed body the client checks for
}
