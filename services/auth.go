// auth.go - Signup, login and session token verification

package services

import (
	"context"
	"fmt"
	"time"

	"go-review-backend/config"
	"go-review-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the users collection the user-facing services need.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	Find(ctx context.Context, conds ...interface{}) ([]models.User, error)
	FindOne(ctx context.Context, conds ...interface{}) (*models.User, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

// Claims is the payload of a session token. The identity fields are copied
// from the user at login and are not refreshed when the user changes.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserStore
	cfg    *config.Config
	logger *zap.Logger
}

func NewAuthService(users UserStore, cfg *config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, logger: logger}
}

// SignUp stores a new user with a bcrypt hash of the password and returns its id.
// Emails are not required to be unique.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (string, error) {
	l := s.logger.With(zap.String("method", "SignUp"), zap.String("email", email))

	if username == "" || email == "" || password == "" { // All three are required
		return "", fmt.Errorf("username, email and password are required: %w", models.ErrValidation)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		l.Error("Failed to hash password", zap.Error(err))
		return "", err
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Insert(ctx, user); err != nil {
		l.Error("Failed to store user", zap.Error(err))
		return "", fmt.Errorf("sign up: %w", err)
	}

	l.Info("User created", zap.String("userID", user.ID))
	return user.ID, nil
}

// Login checks the password of the first user stored under email and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := s.logger.With(zap.String("method", "Login"), zap.String("email", email))

	if email == "" || password == "" {
		return "", fmt.Errorf("email and password are required: %w", models.ErrValidation)
	}

	user, err := s.users.FindOne(ctx, "email = ?", email) // First match wins, emails are not unique
	if err != nil {
		l.Warn("User lookup failed", zap.Error(err))
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.CheckPassword(user.PasswordHash, password) {
		l.Warn("Password comparison failed", zap.String("userID", user.ID))
		return "", models.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		l.Error("Failed to sign token", zap.String("userID", user.ID), zap.Error(err))
		return "", err
	}

	l.Info("Login successful", zap.String("userID", user.ID))
	return token, nil
}

// IssueToken signs an HS256 token for user that expires after the configured TTL.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // HS256 with the shared secret
	signed, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, algorithm and expiry. Every failure is models.ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}

// bcrypt only reads the first 72 bytes of a password; longer ones are cut to that length.
const maxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password at the configured cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), s.cfg.BcryptCost) // Salted, slow hash
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func (s *AuthService) CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), passwordBytes(password)) == nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes] // Same bytes bcrypt itself would use
	}
	return b
}
