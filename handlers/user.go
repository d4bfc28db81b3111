// user.go - Handles signup, login, profile and account management

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"go-review-backend/metrics"    // Auth outcome counters
	"go-review-backend/middleware" // Verified claims
	"go-review-backend/models"     // Domain errors
	"go-review-backend/services"   // Auth and user services

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Logging
)

type SignupInput struct { // Struct for signup input
	Username string `json:"username"` // Also matches the client's "Username" key
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserInput struct { // Struct for account update input
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserHandler struct {
	auth    *services.AuthService
	users   *services.UserService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewUserHandler(auth *services.AuthService, users *services.UserService, m *metrics.Metrics, logger *zap.Logger) *UserHandler {
	return &UserHandler{auth: auth, users: users, metrics: m, logger: logger}
}

func (h *UserHandler) Signup(c *gin.Context) { // Handler for user registration
	var input SignupInput // Declare input variable
	if !bindJSON(c, &input) {
		return
	}
	if _, err := h.auth.SignUp(c.Request.Context(), input.Username, input.Email, input.Password); err != nil {
		h.metrics.RecordAuth("signup", "error")
		logFailure(h.logger, c, http.StatusInternalServerError, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"}) // Validation errors included
		return
	}
	h.metrics.RecordAuth("signup", "success")
	c.String(http.StatusOK, "User created successfully") // Success response
}

func (h *UserHandler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput // Declare input variable
	if !bindJSON(c, &input) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	switch {
	case err == nil:
		h.metrics.RecordAuth("login", "success")
		c.JSON(http.StatusOK, gin.H{"token": token}) // Return token
	case errors.Is(err, models.ErrNotFound):
		h.metrics.RecordAuth("login", "unknown_email")
		c.String(http.StatusBadRequest, "User not found")
	case errors.Is(err, models.ErrInvalidCredentials):
		h.metrics.RecordAuth("login", "invalid_credentials")
		c.String(http.StatusBadRequest, "Invalid Password")
	default:
		h.metrics.RecordAuth("login", "error")
		logFailure(h.logger, c, http.StatusInternalServerError, err)
		c.String(http.StatusInternalServerError, "Error in Login")
	}
}

// Profile echoes the identity captured in the token at login time.
func (h *UserHandler) Profile(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": claims.Username, "email": claims.Email})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		logFailure(h.logger, c, http.StatusInternalServerError, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, users) // passwords are excluded by the model
}

func (h *UserHandler) Update(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	var input UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), claims.UserID, c.Param("id"), input.Username, input.Email)
	if err != nil {
		h.accountError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	if err := h.users.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		h.accountError(c, err)
		return
	}
	c.String(http.StatusOK, "User deleted successfully")
}

func (h *UserHandler) accountError(c *gin.Context, err error) {
	status := statusFor(err)
	logFailure(h.logger, c, status, err)
	switch status {
	case http.StatusForbidden:
		c.String(status, "Forbidden")
	case http.StatusNotFound:
		c.String(status, "User not found")
	default:
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}
