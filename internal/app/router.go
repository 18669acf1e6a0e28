package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"swiftride/internal/handler"
	"swiftride/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler      *handler.RideHandler
	DashboardHandler *handler.DashboardHandler
	PaymentHandler   *handler.PaymentHandler
	SuggestHandler   *handler.SuggestHandler
	FeedHandler      *handler.FeedHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.BookRide)
			rides.GET("", deps.RideHandler.ListRides)
			rides.GET("/subscribe", deps.FeedHandler.Subscribe)
			rides.GET("/:id", deps.RideHandler.GetRide)
			rides.POST("/:id/cancel", deps.RideHandler.CancelRide)
			rides.POST("/:id/status", deps.RideHandler.UpdateStatus)
		}

		// Dashboard and pricing routes.
		v1.GET("/dashboard", deps.DashboardHandler.Summary)
		v1.GET("/pricing/quote", deps.DashboardHandler.Quote)

		// Payment routes. Clients retry these after checkout redirects, so
		// they honor Idempotency-Key.
		payments := v1.Group("/payments")
		payments.Use(middleware.PaymentIdempotency(deps.RedisClient))
		{
			payments.POST("/create-payment", deps.PaymentHandler.CreatePayment)
			payments.POST("/verify-payment", deps.PaymentHandler.VerifyPayment)
		}

		// Location suggestions.
		v1.POST("/suggest-locations", deps.SuggestHandler.Suggest)
	}

	return router
}
