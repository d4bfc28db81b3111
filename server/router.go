// router.go - Wires stores, services and handlers into the gin engine

package server

import (
	"go-review-backend/config"
	"go-review-backend/handlers"
	"go-review-backend/metrics"
	"go-review-backend/middleware"
	"go-review-backend/models"
	"go-review-backend/services"
	"go-review-backend/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter builds the full API. Only /profile and /users/:id sit behind the
// access guard; product and review mutations are public.
func SetupRouter(cfg *config.Config, db *gorm.DB, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	users := store.NewCollection[models.User](db, "users")
	products := store.NewCollection[models.Product](db, "products")
	reviews := store.NewCollection[models.Review](db, "reviews")

	authService := services.NewAuthService(users, cfg, logger)
	userHandler := handlers.NewUserHandler(authService, services.NewUserService(users, logger), m, logger)
	productHandler := handlers.NewProductHandler(services.NewProductService(products, logger), logger)
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(reviews, logger), logger)

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.CORS(cfg.ClientOrigin),
		m.Middleware(),
	)

	r.GET("/", handlers.Root)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// Accounts
	r.POST("/signup", userHandler.Signup)
	r.POST("/login", userHandler.Login)
	r.GET("/users", userHandler.List)

	guard := middleware.AuthMiddleware(authService, m) // Token checks are counted
	r.GET("/profile", guard, userHandler.Profile)
	r.PUT("/users/:id", guard, userHandler.Update)
	r.DELETE("/users/:id", guard, userHandler.Delete)

	// Products
	r.GET("/pro", productHandler.List)
	r.POST("/pro/create", productHandler.Create)
	r.PUT("/pro/update/:id", productHandler.Update)
	r.DELETE("/pro/delete/:id", productHandler.Delete)

	// Reviews
	r.GET("/products/:productId/reviews", reviewHandler.ListByProduct)
	r.POST("/reviews", reviewHandler.Create)
	r.PUT("/reviews/:id", reviewHandler.Update)
	r.DELETE("/reviews/:id", reviewHandler.Delete)

	return r
}
