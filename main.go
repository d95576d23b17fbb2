package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/tradecademy/marketplace/api/v1"
	"github.com/tradecademy/marketplace/config"
	"github.com/tradecademy/marketplace/database"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Connect to database and migrate
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
	}))

	// Root banner
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "marketplace-api",
			"version": "1.0.0",
		})
	})

	// Mount v1 API
	v1.RegisterRoutes(router.Group("/api/v1"))

	// Get port from environment or use default
	port := config.GetEnv(config.EnvPort, "8080")

	// Start server
	log.Printf("🚀 Marketplace API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
