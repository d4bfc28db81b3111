// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For numeric settings
	"time"    // For token lifetime
)

// DefaultSecretKey is only meant for local development; production deployments must set SECRET_KEY.
const DefaultSecretKey = "default_secret_key"

type Config struct { // Config struct holds all configuration values
	Port         string        // HTTP listen port
	DBPath       string        // Path to the SQLite database file
	SecretKey    string        // HMAC secret used to sign session tokens
	TokenTTL     time.Duration // How long an issued token stays valid
	BcryptCost   int           // Work factor for password hashing
	ClientOrigin string        // The single origin allowed by CORS
	LogLevel     string        // zap level name (debug, info, warn, error)
	GinMode      string        // gin mode (debug, release, test)
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:         getEnv("PORT", "3001"),                            // Same port the client expects
		DBPath:       getEnv("DB_PATH", "data.db"),                      // Get DB path or use default
		SecretKey:    getEnv("SECRET_KEY", DefaultSecretKey),            // Get token secret or use default
		TokenTTL:     getDuration("TOKEN_TTL", 10*24*time.Hour),         // Tokens expire after 10 days
		BcryptCost:   getInt("BCRYPT_COST", 10),                         // bcrypt work factor
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"), // Dev server of the client
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		GinMode:      getEnv("GIN_MODE", "release"),
	}
}

// UsesDefaultSecret reports whether tokens are signed with the built-in fallback secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}
