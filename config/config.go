package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys the marketplace reads at startup and per request
const (
	EnvPort                = "PORT"
	EnvDatabaseURL         = "DATABASE_URL"
	EnvJWTSecret           = "JWT_SECRET"
	EnvStripeSecretKey     = "STRIPE_SECRET_KEY"
	EnvStripeWebhookSecret = "STRIPE_WEBHOOK_SECRET"
	EnvCheckoutSuccessURL  = "CHECKOUT_SUCCESS_URL"
	EnvCheckoutCancelURL   = "CHECKOUT_CANCEL_URL"
)

// LoadEnv loads the marketplace configuration from a .env file when present.
// Deployed environments set the variables directly.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
