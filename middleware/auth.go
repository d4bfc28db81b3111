// auth.go - JWT authentication middleware
// This file implements the access guard for the protected endpoints
//
// Authentication Flow:
// 1. Extract the token (second word) from the Authorization header
// 2. Validate token signature and expiration
// 3. Store the verified claims in context for handlers
//
// Every check is counted as operation "token" with outcome missing, invalid or ok.
//
// Ownership checks (user id in token == user id in path) happen in the user service,
// the middleware only establishes identity.

package middleware // Declares the package name

import ( // Import required packages
	"go-review-backend/services" // Claims type
	"net/http"                   // HTTP status codes (400, 401)
	"strings"                    // String operations (for header parsing)

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

const claimsKey = "claims" // gin context key holding *services.Claims

// TokenVerifier is satisfied by services.AuthService.
type TokenVerifier interface {
	VerifyToken(token string) (*services.Claims, error)
}

// AuthRecorder is satisfied by *metrics.Metrics. A nil recorder disables counting.
type AuthRecorder interface {
	RecordAuth(operation, outcome string)
}

// AuthMiddleware - Returns a Gin middleware function for bearer token authentication
//
// How it works:
// 1. Reads the word after the scheme in "Authorization: Bearer <token>", 401 if there is none
// 2. Validates the token, 400 if it is tampered, malformed or expired
// 3. Stores the claims in the Gin context for later use
func AuthMiddleware(verifier TokenVerifier, recorder AuthRecorder) gin.HandlerFunc { // Returns a Gin middleware function
	record := func(outcome string) {
		if recorder != nil {
			recorder.RecordAuth("token", outcome)
		}
	}

	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok { // Missing header or nothing after the scheme
			record("missing")
			c.String(http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		// STEP 2: Verify the token
		claims, err := verifier.VerifyToken(tokenStr)
		if err != nil { // If token is invalid or expired
			record("invalid")
			c.String(http.StatusBadRequest, "Invalid token")
			c.Abort()
			return
		}

		// STEP 3: Store claims in context so handlers do not re-parse the token
		record("ok")
		c.Set(claimsKey, claims)
		c.Next() // Continue to next handler (authentication successful)
	}
}

// CurrentUser returns the claims stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*services.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok
}

// bearerToken returns the second space-separated word of the header. The scheme
// word is not checked, and "Bearer  <jwt>" (two spaces) yields an empty token.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
