// user_test.go - Automated tests for the account handlers
// Run with: go test ./...

package handlers

import (
	"bytes"             // For building request bodies
	"encoding/json"     // For encoding/decoding JSON
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"path/filepath"     // Per-test database file
	"strings"           // For building long inputs
	"testing"           // Go's testing package
	"time"

	"go-review-backend/config"     // Project config
	"go-review-backend/database"   // Database connection
	"go-review-backend/metrics"    // Counters required by the user handler
	"go-review-backend/middleware" // Access guard
	"go-review-backend/models"     // Collection models
	"go-review-backend/services"   // Services under the handlers
	"go-review-backend/store"      // Collections

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupTestDB creates a fresh database for each test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db")) // Connect and migrate
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "handler-secret", TokenTTL: 10 * 24 * time.Hour, BcryptCost: 4}
}

// setupRouter returns a Gin engine with every route registered the way the server does
func setupRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	log := zap.NewNop()

	users := store.NewCollection[models.User](db, "users")
	auth := services.NewAuthService(users, testConfig(), log)
	userHandler := NewUserHandler(auth, services.NewUserService(users, log), metrics.New(), log)
	productHandler := NewProductHandler(services.NewProductService(store.NewCollection[models.Product](db, "products"), log), log)
	reviewHandler := NewReviewHandler(services.NewReviewService(store.NewCollection[models.Review](db, "reviews"), log), log)

	r := gin.New()
	r.GET("/", Root)
	r.POST("/signup", userHandler.Signup) // Signup endpoint
	r.POST("/login", userHandler.Login)   // Login endpoint
	r.GET("/users", userHandler.List)
	guard := middleware.AuthMiddleware(auth, nil)
	r.GET("/profile", guard, userHandler.Profile)
	r.PUT("/users/:id", guard, userHandler.Update)
	r.DELETE("/users/:id", guard, userHandler.Delete)
	r.GET("/pro", productHandler.List)
	r.POST("/pro/create", productHandler.Create)
	r.PUT("/pro/update/:id", productHandler.Update)
	r.DELETE("/pro/delete/:id", productHandler.Delete)
	r.GET("/products/:productId/reviews", reviewHandler.ListByProduct)
	r.POST("/reviews", reviewHandler.Create)
	r.PUT("/reviews/:id", reviewHandler.Update)
	r.DELETE("/reviews/:id", reviewHandler.Delete)
	return r, auth
}

// do sends a JSON request (body may be nil) with an optional bearer token
func do(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body) // Encode input as JSON
	}
	w := httptest.NewRecorder()                        // Record HTTP response
	req, _ := http.NewRequest(method, path, &buf)      // Build request
	req.Header.Set("Content-Type", "application/json") // Set header
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req) // Serve request
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := do(router, "POST", "/login", LoginInput{Email: email, Password: password}, "")
	require.Equal(t, 200, w.Code, w.Body.String())
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["token"]
}

// TestSignupLoginProfile walks the documented happy path and the wrong-password case
func TestSignupLoginProfile(t *testing.T) {
	router, _ := setupRouter(t)

	// --- Test signup ---
	w := do(router, "POST", "/signup", SignupInput{Username: "alice", Email: "a@x.com", Password: "pw1"}, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "User created successfully", w.Body.String())

	// --- Test login ---
	token := login(t, router, "a@x.com", "pw1")
	assert.NotEmpty(t, token)

	// --- Test profile ---
	w = do(router, "GET", "/profile", nil, token)
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"username":"alice","email":"a@x.com"}`, w.Body.String())

	// --- Test login with wrong password ---
	w = do(router, "POST", "/login", LoginInput{Email: "a@x.com", Password: "wrong"}, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Invalid Password", w.Body.String())

	// --- Test login with unknown email ---
	w = do(router, "POST", "/login", LoginInput{Email: "nobody@x.com", Password: "pw1"}, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "User not found", w.Body.String())
}

// TestSignupLongPassword checks passwords past bcrypt's 72-byte limit still sign up and log in
func TestSignupLongPassword(t *testing.T) {
	router, _ := setupRouter(t)
	password := strings.Repeat("p", 80)

	w := do(router, "POST", "/signup", SignupInput{Username: "carol", Email: "c@x.com", Password: password}, "")
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.Equal(t, "User created successfully", w.Body.String())

	w = do(router, "GET", "/profile", nil, login(t, router, "c@x.com", password))
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"username":"carol","email":"c@x.com"}`, w.Body.String())
}

func TestSignupAcceptsCapitalisedUsernameKey(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "POST", "/signup", map[string]string{"Username": "bob", "email": "b@x.com", "password": "pw"}, "")
	require.Equal(t, 200, w.Code)

	w = do(router, "GET", "/profile", nil, login(t, router, "b@x.com", "pw"))
	assert.JSONEq(t, `{"username":"bob","email":"b@x.com"}`, w.Body.String())
}

func TestSignupMissingFieldIsServerError(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "POST", "/signup", map[string]string{"email": "a@x.com", "password": "pw"}, "")
	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestMalformedJSON(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestListUsersHidesPasswords(t *testing.T) {
	router, _ := setupRouter(t)
	do(router, "POST", "/signup", SignupInput{Username: "alice", Email: "a@x.com", Password: "pw1"}, "")

	w := do(router, "GET", "/users", nil, "")
	require.Equal(t, 200, w.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["username"])
	assert.NotEmpty(t, users[0]["_id"])
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, users[0], "PasswordHash")
}

func TestProfileRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "GET", "/profile", nil, "")
	assert.Equal(t, 401, w.Code)

	w = do(router, "GET", "/profile", nil, "tampered.token.value")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Invalid token", w.Body.String())
}

func TestUpdateAndDeleteUserOwnerOnly(t *testing.T) {
	router, auth := setupRouter(t)
	do(router, "POST", "/signup", SignupInput{Username: "alice", Email: "a@x.com", Password: "pw1"}, "")
	do(router, "POST", "/signup", SignupInput{Username: "bob", Email: "b@x.com", Password: "pw2"}, "")

	aliceToken := login(t, router, "a@x.com", "pw1")
	bobToken := login(t, router, "b@x.com", "pw2")
	alice, err := auth.VerifyToken(aliceToken)
	require.NoError(t, err)

	// bob may not touch alice
	w := do(router, "PUT", "/users/"+alice.UserID, UpdateUserInput{Username: "hacked"}, bobToken)
	assert.Equal(t, 403, w.Code)
	assert.Equal(t, "Forbidden", w.Body.String())
	w = do(router, "DELETE", "/users/"+alice.UserID, nil, bobToken)
	assert.Equal(t, 403, w.Code)

	// alice may
	w = do(router, "PUT", "/users/"+alice.UserID, UpdateUserInput{Username: "alicia", Email: "alicia@x.com"}, aliceToken)
	require.Equal(t, 200, w.Code)
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "alicia", updated["username"])
	assert.Equal(t, "alicia@x.com", updated["email"])
	assert.NotContains(t, updated, "password")

	// the token still carries the identity captured at login
	w = do(router, "GET", "/profile", nil, aliceToken)
	assert.JSONEq(t, `{"username":"alice","email":"a@x.com"}`, w.Body.String())

	w = do(router, "DELETE", "/users/"+alice.UserID, nil, aliceToken)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "User deleted successfully", w.Body.String())

	// deleted, but the token stays valid until it expires
	w = do(router, "DELETE", "/users/"+alice.UserID, nil, aliceToken)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "User not found", w.Body.String())
}

func TestRoot(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "GET", "/", nil, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Get message", w.Body.String())
}
