package api

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/api/handlers"
	apimiddleware "github.com/tokentide/tokentide-api/internal/api/middleware"
	"github.com/tokentide/tokentide-api/internal/config"
	"github.com/tokentide/tokentide-api/internal/llm"
	"github.com/tokentide/tokentide-api/internal/logger"
	"github.com/tokentide/tokentide-api/internal/metrics"
	"github.com/tokentide/tokentide-api/internal/middleware"
	"github.com/tokentide/tokentide-api/internal/services"
	webhandlers "github.com/tokentide/tokentide-api/internal/web/handlers"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	cloudWatch, err := metrics.NewClient(context.Background(), cfg.Environment)
	if err != nil {
		logger.Warn("CloudWatch metrics unavailable", logger.Fields{"error": err.Error()})
	}

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudWatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Serve static files (logo, etc.)
	router.Static("/static", "./static")

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Web pages
	webHandler := webhandlers.NewWebHandler(db)
	router.GET("/", middleware.OptionalJWTAuth(db, cfg), webHandler.Home)
	router.GET("/features", webHandler.Features)
	router.GET("/pricing", webHandler.Pricing)
	router.GET("/about", webHandler.About)
	router.GET("/login", webHandler.Login)
	router.GET("/auth", webHandler.Login)

	// Dashboard (requires login, redirects anonymously)
	router.GET("/dashboard", middleware.OptionalJWTAuth(db, cfg), webHandler.Dashboard)

	// Shared services
	activityService := services.NewActivityService(db)
	emailService := services.NewEmailService(cfg)
	brevoListID, _ := strconv.Atoi(cfg.BrevoListID)
	subscriptionService := services.NewSubscriptionService(db, emailService, cfg.BrevoAPIKey, brevoListID)

	// Mailing list signup (public)
	subscribeHandler := handlers.NewSubscribeHandler(subscriptionService, cloudWatch)
	router.POST("/api/subscribe", subscribeHandler.Subscribe)

	// Auth routes (public)
	auth := router.Group("/api/auth")
	{
		authHandler := handlers.NewAuthHandler(db, cfg)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.Refresh)

		// OAuth routes
		oauthHandler := handlers.NewOAuthHandler(db, cfg)
		auth.GET("/:provider", oauthHandler.BeginAuth)
		auth.GET("/:provider/callback", oauthHandler.Callback)
	}

	providerFactory := llm.NewProviderFactory(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.OpenAIAPIKey, cloudWatch)
	generateHandler := handlers.NewGenerateHandler(cfg, providerFactory, activityService, cloudWatch)

	// Generation works with or without a session; activity is only recorded
	// for signed-in users
	router.POST("/api/generate", middleware.OptionalJWTAuth(db, cfg), generateHandler.Generate)

	// Protected API routes v1 (require JWT)
	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(db, cfg))
	{
		v1.POST("/generate", generateHandler.Generate)

		userHandler := handlers.NewUserHandler(db, activityService)
		v1.GET("/me", userHandler.GetProfile)
		v1.GET("/activity", userHandler.GetActivity)
		v1.GET("/content/saved", userHandler.ListSavedContent)
		v1.POST("/content/saved", userHandler.SaveContent)
		v1.DELETE("/content/saved/:id", userHandler.DeleteSavedContent)
	}

	return router
}
