// main.go - Entry point for the product review backend

package main // Declares the package name

import ( // Import required packages
	"context"                    // Root context for the server
	"go-review-backend/config"   // Project config management
	"go-review-backend/database" // Database connection and setup
	"go-review-backend/logger"   // zap construction
	"go-review-backend/metrics"  // Prometheus collectors
	"go-review-backend/server"   // Router and HTTP lifecycle
	"log"                        // Fallback logging before zap is up

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/joho/godotenv" // .env support
	"go.uber.org/zap"          // Structured logging
)

func main() { // Main function, program entry point
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// STEP 1: Load configuration
	if err := godotenv.Load(); err != nil { // .env is optional
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load() // Load configuration (port, DB path, token secret)

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	if cfg.UsesDefaultSecret() {
		zlog.Warn("SECRET_KEY is not set, tokens are signed with the built-in development secret")
	}

	// STEP 2: Establish the database connection
	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		zlog.Error("DB connection error", zap.Error(err))
		return err
	}
	defer database.Close(db)
	zlog.Info("Database connected", zap.String("path", cfg.DBPath))

	// STEP 3: Create Gin router and configure routes
	gin.SetMode(cfg.GinMode)
	router := server.SetupRouter(cfg, db, zlog, metrics.New())

	// STEP 4: Start the web server
	return server.Run(context.Background(), ":"+cfg.Port, router, zlog)
}
