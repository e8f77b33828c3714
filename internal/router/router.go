// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/terrazul/terrazul-backend/internal/cart"
	"github.com/terrazul/terrazul-backend/internal/config"
	"github.com/terrazul/terrazul-backend/internal/handlers"
	"github.com/terrazul/terrazul-backend/internal/middleware"
	"github.com/terrazul/terrazul-backend/internal/services"
	"github.com/terrazul/terrazul-backend/internal/utils"
)

func Initialize(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	productService := services.NewProductService(db)
	authService := services.NewAuthService(db, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	var cartStore cart.Store
	if redisClient != nil {
		cartStore = cart.NewRedisStore(redisClient, cfg.Cart.KeyPrefix, cfg.Cart.TTL())
	} else {
		// Local development without redis keeps carts in memory
		cartStore = cart.NewMemoryStore()
	}
	cartService := services.NewCartService(cartStore, productService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	quizHandler := handlers.NewQuizHandler()
	adminHandler := handlers.NewAdminHandler(productService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(cfg.RateLimit))
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		// Cart routes (anonymous, keyed by session cookie)
		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.CartSession(&cfg.Cart))
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:cartId", cartHandler.UpdateQuantity)
			cartRoutes.DELETE("/items/:cartId", cartHandler.RemoveItem)
			cartRoutes.DELETE("", cartHandler.ClearCart)
		}

		// Quiz routes (public)
		quizRoutes := v1.Group("/quiz")
		{
			quizRoutes.GET("/questions", quizHandler.GetQuestions)
			quizRoutes.POST("/recommendation", quizHandler.GetRecommendation)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)

			adminProducts := admin.Group("/products")
			{
				adminProducts.POST("", productHandler.CreateProduct)
				adminProducts.PUT("/:id", productHandler.UpdateProduct)
				adminProducts.DELETE("/:id", productHandler.DeleteProduct)
				adminProducts.POST("/upload", middleware.UploadRateLimit(cfg.RateLimit), productHandler.UploadImage)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
