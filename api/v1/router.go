package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/tradecademy/marketplace/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
		authGroup.POST("/become-creator", middleware.AuthMiddleware(), BecomeCreator)
	}

	// Service endpoints - reads are public (anonymous callers see ACTIVE only)
	serviceGroup := router.Group("/services")
	{
		serviceGroup.GET("", middleware.OptionalAuthMiddleware(), ListServices)
		serviceGroup.GET("/:id", middleware.OptionalAuthMiddleware(), GetService)
		serviceGroup.POST("", middleware.AuthMiddleware(), CreateService)
		serviceGroup.PUT("/:id", middleware.AuthMiddleware(), UpdateService)
		serviceGroup.DELETE("/:id", middleware.AuthMiddleware(), DeleteService)
		serviceGroup.POST("/:id/purchase", middleware.AuthMiddleware(), PurchaseService)
		serviceGroup.GET("/:id/analytics", middleware.AuthMiddleware(), GetServiceAnalytics)
	}

	// Category endpoints - writes are admin-gated
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", ListCategories)
		categoryGroup.GET("/:id", GetCategory)
		categoryGroup.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), CreateCategory)
		categoryGroup.PATCH("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), UpdateCategory)
		categoryGroup.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), DeleteCategory)
	}

	// Review endpoints
	reviewGroup := router.Group("/reviews")
	{
		reviewGroup.GET("", ListReviews)
		reviewGroup.GET("/:id", GetReview)
		reviewGroup.POST("", middleware.AuthMiddleware(), CreateReview)
		reviewGroup.PATCH("/:id", middleware.AuthMiddleware(), UpdateReview)
		reviewGroup.DELETE("/:id", middleware.AuthMiddleware(), DeleteReview)
	}

	// Purchase endpoints - protected by AuthMiddleware
	purchaseGroup := router.Group("/purchases")
	purchaseGroup.Use(middleware.AuthMiddleware())
	{
		purchaseGroup.GET("", ListPurchases)
		purchaseGroup.POST("", CreatePurchase)
		purchaseGroup.GET("/:id", GetPurchase)
		purchaseGroup.PATCH("/:id", UpdatePurchase)
	}

	// Payment webhook - signature-verified, no session auth
	router.POST("/webhooks/stripe", middleware.StripeWebhookVerifier, StripeWebhook)

	// Admin endpoints
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/stats/overview", GetMarketplaceStats)
		adminGroup.GET("/users", ListUsers)
	}
}
